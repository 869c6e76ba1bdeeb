package matching

import (
	"math"

	"jobfit/internal/domain/job"
	"jobfit/internal/domain/match"
	"jobfit/internal/domain/skill"
	"jobfit/internal/domain/user"
)

const (
	requiredSkillPoints  = 70.0
	preferredSkillPoints = 30.0
	weakSkillPenalty     = 5
)

// ScoreSkills scores the user's skills against the skills extracted from p.
// A posting with no recognizable skills scores 0.
func (s *Scorers) ScoreSkills(p job.Posting, prof user.Profile) match.SkillsScore {
	records := s.extractor.Extract(p)
	if len(records) == 0 {
		return match.SkillsScore{Details: match.SkillsDetails{
			Matched: make([]skill.MatchedSkill, 0),
			Weak:    make([]skill.GapSkill, 0),
			Missing: make([]skill.GapSkill, 0),
		}}
	}
	return s.scoreSkillRecords(records, prof.Skills)
}

func (s *Scorers) scoreSkillRecords(records []skill.Record, userSkills []skill.UserSkill) match.SkillsScore {
	a := s.gaps.Analyze(userSkills, records)

	d := match.SkillsDetails{
		Total:     len(records),
		WeakCount: len(a.Weak),
		Matched:   a.Matched,
		Weak:      a.Weak,
		Missing:   a.Missing,
	}
	for _, r := range records {
		if r.Importance == skill.ImportanceRequired {
			d.RequiredTotal++
		} else {
			d.PreferredTotal++
		}
	}
	for _, m := range a.Matched {
		if m.Importance == skill.ImportanceRequired {
			d.RequiredMatched++
		} else {
			d.PreferredMatched++
		}
	}

	required := requiredSkillPoints
	if d.RequiredTotal > 0 {
		required = float64(d.RequiredMatched) / float64(d.RequiredTotal) * requiredSkillPoints
	}
	preferred := preferredSkillPoints
	if d.PreferredTotal > 0 {
		preferred = float64(d.PreferredMatched) / float64(d.PreferredTotal) * preferredSkillPoints
	}
	raw := required + preferred - float64(weakSkillPenalty*d.WeakCount)

	return match.SkillsScore{
		CategoryScore: match.CategoryScore{Score: clampScore(int(math.Round(raw)))},
		Details:       d,
	}
}
