package matching

import (
	"fmt"
	"math"
	"sort"

	"jobfit/internal/domain/match"
)

const (
	priorityApplyScore = 75
	lowAverageScore    = 60
	weakSkillsScore    = 50
)

// CompareMatches ranks results by overall score. An empty input yields a
// zero comparison with nil best and worst matches.
func CompareMatches(results []match.Result) match.Comparison {
	cmp := match.Comparison{
		TotalJobs:       len(results),
		Rankings:        make([]match.RankedMatch, 0, len(results)),
		Recommendations: make([]match.Recommendation, 0),
	}
	if len(results) == 0 {
		return cmp
	}

	sorted := make([]match.Result, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].OverallScore > sorted[j].OverallScore })

	sum, weakSkills := 0, 0
	for i, r := range sorted {
		sum += r.OverallScore
		if r.CategoryScores.Skills.Score < weakSkillsScore {
			weakSkills++
		}
		switch {
		case r.OverallScore >= 85:
			cmp.ScoreDistribution.Excellent++
		case r.OverallScore >= 70:
			cmp.ScoreDistribution.Good++
		case r.OverallScore >= 55:
			cmp.ScoreDistribution.Fair++
		default:
			cmp.ScoreDistribution.Poor++
		}
		cmp.Rankings = append(cmp.Rankings, match.RankedMatch{
			Rank:        i + 1,
			MatchID:     r.ID,
			JobID:       r.JobID,
			JobTitle:    r.Metadata.JobTitle,
			Company:     r.Metadata.Company,
			Score:       r.OverallScore,
			SkillsScore: r.CategoryScores.Skills.Score,
			Grade:       match.GradeFor(r.OverallScore),
		})
	}

	best := cmp.Rankings[0]
	worst := cmp.Rankings[len(cmp.Rankings)-1]
	cmp.BestMatch = &best
	cmp.WorstMatch = &worst
	cmp.AverageScore = int(math.Round(float64(sum) / float64(len(sorted))))

	if best.Score >= priorityApplyScore {
		cmp.Recommendations = append(cmp.Recommendations, match.Recommendation{
			Kind:    match.RecommendationPriority,
			Message: fmt.Sprintf("Prioritize your application to %s at %s (score %d).", best.JobTitle, best.Company, best.Score),
		})
	}
	if cmp.AverageScore < lowAverageScore {
		cmp.Recommendations = append(cmp.Recommendations, match.Recommendation{
			Kind:    match.RecommendationWarning,
			Message: fmt.Sprintf("Your average match score is %d. Consider broadening your search or improving key skills.", cmp.AverageScore),
		})
	}
	if weakSkills*2 > len(sorted) {
		cmp.Recommendations = append(cmp.Recommendations, match.Recommendation{
			Kind:    match.RecommendationSkills,
			Message: "Focus on developing in-demand skills: most of these jobs score below 50 on skills.",
		})
	}
	return cmp
}
