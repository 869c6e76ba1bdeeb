package matching

import (
	"math"
	"strings"
	"time"

	"jobfit/internal/domain/job"
	"jobfit/internal/domain/match"
	"jobfit/internal/domain/user"
	"jobfit/internal/textproc"
)

const (
	experienceBase        = 50
	yearsPoints           = 30.0
	relevantPositionsCap  = 40
	industryBonus         = 15
	seniorityBonus        = 15
	minRetainedTenure     = 6
	recentPositionsToRank = 2
)

var relevancePoints = map[match.Relevance]int{
	match.RelevanceHigh:   15,
	match.RelevanceMedium: 10,
	match.RelevanceLow:    5,
}

// ScoreExperience scores employment history. An empty history scores 0.
func (s *Scorers) ScoreExperience(p job.Posting, prof user.Profile, now time.Time) match.ExperienceScore {
	required := textproc.YearsRequired(append([]string{p.Title, p.Description}, p.Requirements...)...)
	jobLevel := jobSeniority(p.Title, required)

	d := match.ExperienceDetails{
		RequiredYears:     required,
		JobSeniority:      string(jobLevel),
		RelevantPositions: make([]match.RelevantPosition, 0),
	}
	if len(prof.Employment) == 0 {
		return match.ExperienceScore{Details: d}
	}

	years := prof.TotalYears(now)
	d.TotalYears = math.Round(years*10) / 10
	d.YearsMet = required == 0 || years >= float64(required)

	yearsComponent := yearsPoints
	if !d.YearsMet {
		yearsComponent = yearsPoints * years / float64(required)
	}

	titleKW := textproc.Keywords(p.Title)
	jobKW := textproc.Keywords(p.Title + " " + p.Description)
	positionPoints := 0
	for _, e := range prof.RecentEmployment() {
		rel := positionRelevance(e, titleKW, jobKW)
		months := e.Months(now)
		if rel == match.RelevanceLow && months < minRetainedTenure {
			continue
		}
		d.RelevantPositions = append(d.RelevantPositions, match.RelevantPosition{
			Title:     e.Title,
			Company:   e.Company,
			Months:    months,
			Relevance: rel,
		})
		positionPoints += relevancePoints[rel]
	}
	positionPoints = clampInt(positionPoints, 0, relevantPositionsCap)

	d.IndustryMatch = industryMatches(p.Industry, prof.Employment)
	userLevel := userSeniority(prof, years)
	d.UserSeniority = string(userLevel)
	d.SeniorityMatch = userLevel.rank() >= jobLevel.rank()

	raw := float64(experienceBase) + yearsComponent + float64(positionPoints)
	if d.IndustryMatch {
		raw += industryBonus
	}
	if d.SeniorityMatch {
		raw += seniorityBonus
	}

	return match.ExperienceScore{
		CategoryScore: match.CategoryScore{Score: clampScore(int(math.Round(raw)))},
		Details:       d,
	}
}

func positionRelevance(e user.Employment, titleKW, jobKW map[string]bool) match.Relevance {
	titleHits := textproc.CountKeywords(titleKW, e.Title)
	switch {
	case titleHits >= 2:
		return match.RelevanceHigh
	case titleHits >= 1 || textproc.CountKeywords(jobKW, e.Title+" "+e.Description) >= 3:
		return match.RelevanceMedium
	default:
		return match.RelevanceLow
	}
}

func industryMatches(industry string, history []user.Employment) bool {
	industry = strings.ToLower(strings.TrimSpace(industry))
	if industry == "" {
		return false
	}
	for _, e := range history {
		for _, field := range []string{e.Industry, e.Company, e.Description} {
			if strings.Contains(strings.ToLower(field), industry) {
				return true
			}
		}
	}
	return false
}

// userSeniority reads the two most recent titles, then the stated experience
// level, then total years.
func userSeniority(prof user.Profile, years float64) Seniority {
	best := Seniority("")
	for i, e := range prof.RecentEmployment() {
		if i == recentPositionsToRank {
			break
		}
		if s := seniorityFromText(e.Title); s.rank() > best.rank() {
			best = s
		}
	}
	if best != "" {
		return best
	}
	if s := seniorityFromText(prof.ExperienceLevel); s != "" {
		return s
	}
	return seniorityFromYears(years)
}
