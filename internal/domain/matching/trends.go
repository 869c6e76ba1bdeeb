package matching

import (
	"fmt"
	"sort"
	"strings"

	"jobfit/internal/domain/job"
	"jobfit/internal/domain/skill"
)

const (
	trendingLimit        = 10
	criticalGapLimit     = 5
	trendRecommendLimit  = 3
	trendGapMinFrequency = 3
)

type TrendAnalyzer struct {
	extractor *Extractor
}

func NewTrendAnalyzer(e *Extractor) *TrendAnalyzer {
	return &TrendAnalyzer{extractor: e}
}

type trendCount struct {
	name       string
	category   string
	importance skill.Importance
	frequency  int
}

// Analyze counts in how many jobs each skill appears and compares the most
// frequent ones against the user's skills.
func (t *TrendAnalyzer) Analyze(jobs []job.Posting, userSkills []skill.UserSkill) skill.TrendReport {
	report := skill.TrendReport{
		JobCount:        len(jobs),
		Trending:        make([]skill.TrendingSkill, 0),
		CriticalGaps:    make([]skill.TrendingSkill, 0),
		Recommendations: make([]string, 0),
	}
	if len(jobs) == 0 {
		return report
	}

	counts := make(map[string]*trendCount)
	for _, j := range jobs {
		for _, rec := range t.extractor.Extract(j) {
			key := skill.NormalizeName(rec.Name)
			c, ok := counts[key]
			if !ok {
				c = &trendCount{name: rec.Name, category: rec.Category}
				counts[key] = c
			}
			c.frequency++
			if rec.Importance.Rank() > c.importance.Rank() {
				c.importance = rec.Importance
			}
		}
	}

	all := make([]*trendCount, 0, len(counts))
	for _, c := range counts {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].frequency != all[j].frequency {
			return all[i].frequency > all[j].frequency
		}
		return strings.ToLower(all[i].name) < strings.ToLower(all[j].name)
	})
	if len(all) > trendingLimit {
		all = all[:trendingLimit]
	}

	have := userSkillIndex(userSkills)
	for _, c := range all {
		_, has := have[skill.NormalizeName(c.name)]
		ts := skill.TrendingSkill{
			Name:       c.name,
			Frequency:  c.frequency,
			Percentage: percentage(c.frequency, len(jobs)),
			Importance: c.importance,
			Category:   c.category,
			HasSkill:   has,
		}
		report.Trending = append(report.Trending, ts)
		if !has && c.frequency*2 >= len(jobs) && len(report.CriticalGaps) < criticalGapLimit {
			report.CriticalGaps = append(report.CriticalGaps, ts)
		}
	}

	report.Recommendations = trendRecommendations(report)
	return report
}

func trendRecommendations(r skill.TrendReport) []string {
	out := make([]string, 0, 2)

	strengths := make([]string, 0, trendRecommendLimit)
	gaps := make([]skill.TrendingSkill, 0, trendRecommendLimit)
	for _, ts := range r.Trending {
		if ts.HasSkill && len(strengths) < trendRecommendLimit {
			strengths = append(strengths, ts.Name)
		}
		if !ts.HasSkill && ts.Frequency >= trendGapMinFrequency && len(gaps) < trendRecommendLimit {
			gaps = append(gaps, ts)
		}
	}

	if len(strengths) > 0 {
		out = append(out, fmt.Sprintf("Your skills in %s are in high demand. Feature them prominently in your applications.", strings.Join(strengths, ", ")))
	}
	for _, g := range gaps {
		out = append(out, fmt.Sprintf("Consider learning %s: it appears in %d of %d jobs (%d%%).", g.Name, g.Frequency, r.JobCount, g.Percentage))
	}
	return out
}
