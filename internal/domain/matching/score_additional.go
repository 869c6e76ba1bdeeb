package matching

import (
	"strings"
	"time"

	"jobfit/internal/domain/job"
	"jobfit/internal/domain/match"
	"jobfit/internal/domain/user"
	"jobfit/internal/textproc"
)

const (
	additionalBase      = 50
	locationPoints      = 25
	workModePoints      = 25
	salaryPoints        = 20
	certPoints          = 5
	certCap             = 15
	projectPoints       = 3
	projectCap          = 15
	baseExpectedSalary  = 40000
	salaryPerYear       = 8000
	salaryToleranceRate = 0.8
)

// ScoreAdditional scores location, work mode, salary, certifications and projects.
func (s *Scorers) ScoreAdditional(p job.Posting, prof user.Profile, now time.Time) match.AdditionalScore {
	years := prof.TotalYears(now)
	expected := baseExpectedSalary + salaryPerYear*years

	d := match.AdditionalDetails{
		LocationMatch:      locationMatches(p, prof.Location),
		WorkModeMatch:      workModeMatches(p.WorkMode, prof.PreferredWorkModes),
		SalaryMatch:        p.Salary == nil || p.Salary.Min <= 0 || p.Salary.Min >= salaryToleranceRate*expected,
		ExpectedMinSalary:  int(expected),
		CertificationCount: len(prof.Certifications),
		ProjectCount:       len(prof.Projects),
	}

	raw := additionalBase
	if d.LocationMatch {
		raw += locationPoints
	}
	if d.WorkModeMatch {
		raw += workModePoints
	}
	if d.SalaryMatch {
		raw += salaryPoints
	}
	raw += clampInt(certPoints*d.CertificationCount, 0, certCap)
	raw += clampInt(projectPoints*d.ProjectCount, 0, projectCap)

	return match.AdditionalScore{
		CategoryScore: match.CategoryScore{Score: clampScore(raw)},
		Details:       d,
	}
}

// locationMatches holds for remote jobs, jobs without a location, and any
// textual overlap between the two locations.
func locationMatches(p job.Posting, userLocation string) bool {
	if p.IsRemote() {
		return true
	}
	jobLoc := textproc.Normalize(p.Location)
	if jobLoc == "" {
		return true
	}
	userLoc := textproc.Normalize(userLocation)
	if userLoc == "" {
		return false
	}
	if textproc.ContainsWord(jobLoc, userLoc) || textproc.ContainsWord(userLoc, jobLoc) {
		return true
	}
	for _, part := range strings.Split(userLoc, ",") {
		part = strings.TrimSpace(part)
		if len(part) >= 2 && textproc.ContainsWord(jobLoc, part) {
			return true
		}
	}
	return false
}

func workModeMatches(mode job.WorkMode, preferred []job.WorkMode) bool {
	mode = mode.Normalize()
	if mode == "" || len(preferred) == 0 {
		return true
	}
	for _, m := range preferred {
		if m.Normalize() == mode {
			return true
		}
	}
	return false
}
