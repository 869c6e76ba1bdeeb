package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobfit/internal/domain/match"
)

func result(overall, skills int, title string) match.Result {
	return match.Result{
		ID:           uuid.New(),
		JobID:        uuid.New(),
		OverallScore: overall,
		CategoryScores: match.CategoryScores{
			Skills: match.SkillsScore{CategoryScore: match.CategoryScore{Score: skills}},
		},
		Metadata: match.Metadata{JobTitle: title, Company: "Acme"},
	}
}

func TestCompareMatchesEmpty(t *testing.T) {
	got := CompareMatches(nil)

	assert.Equal(t, 0, got.TotalJobs)
	assert.Equal(t, 0, got.AverageScore)
	assert.Nil(t, got.BestMatch)
	assert.Nil(t, got.WorstMatch)
	assert.NotNil(t, got.Recommendations)
	assert.Empty(t, got.Recommendations)
	assert.Equal(t, match.ScoreDistribution{}, got.ScoreDistribution)
}

func TestCompareMatchesRanksAndDistributes(t *testing.T) {
	in := []match.Result{
		result(60, 40, "Backend"),
		result(90, 95, "Platform"),
		result(30, 20, "Data"),
	}

	got := CompareMatches(in)

	require.NotNil(t, got.BestMatch)
	require.NotNil(t, got.WorstMatch)
	assert.Equal(t, 3, got.TotalJobs)
	assert.Equal(t, 90, got.BestMatch.Score)
	assert.Equal(t, "Platform", got.BestMatch.JobTitle)
	assert.Equal(t, 30, got.WorstMatch.Score)
	assert.Equal(t, 60, got.AverageScore)
	assert.Equal(t, match.ScoreDistribution{Excellent: 1, Good: 0, Fair: 1, Poor: 1}, got.ScoreDistribution)

	require.Len(t, got.Rankings, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{got.Rankings[0].Rank, got.Rankings[1].Rank, got.Rankings[2].Rank})
	assert.Equal(t, match.GradeExcellent, got.Rankings[0].Grade)
	assert.Equal(t, in[0].ID, got.Rankings[1].MatchID, "input order is left untouched")

	kinds := make([]match.RecommendationKind, 0, len(got.Recommendations))
	for _, r := range got.Recommendations {
		kinds = append(kinds, r.Kind)
	}
	assert.Equal(t, []match.RecommendationKind{match.RecommendationPriority, match.RecommendationSkills}, kinds)
}

func TestCompareMatchesLowAverageWarning(t *testing.T) {
	got := CompareMatches([]match.Result{result(50, 70, "A"), result(40, 60, "B")})

	require.Len(t, got.Recommendations, 1)
	assert.Equal(t, match.RecommendationWarning, got.Recommendations[0].Kind)
	assert.Equal(t, 45, got.AverageScore)
}

func TestGradeBoundaries(t *testing.T) {
	assert.Equal(t, match.GradeExcellent, match.GradeFor(85))
	assert.Equal(t, match.GradeGood, match.GradeFor(84))
	assert.Equal(t, match.GradeGood, match.GradeFor(70))
	assert.Equal(t, match.GradeFair, match.GradeFor(55))
	assert.Equal(t, match.GradePoor, match.GradeFor(54))
}
