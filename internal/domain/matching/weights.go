package matching

import (
	"math"

	"jobfit/internal/domain/match"
)

// RecalculateOverallScore combines existing category scores under new weights.
// Category scores are never re-derived. The weights need not sum to 100.
func RecalculateOverallScore(scores match.CategoryScores, weights match.WeightMap) (int, match.WeightMap, error) {
	norm, err := weights.Normalize()
	if err != nil {
		return 0, match.WeightMap{}, err
	}
	total := float64(scores.Skills.Score)*norm.Skills +
		float64(scores.Experience.Score)*norm.Experience +
		float64(scores.Education.Score)*norm.Education +
		float64(scores.Additional.Score)*norm.Additional
	return clampScore(int(math.Round(total / 100))), norm, nil
}

// applyWeights stamps the rounded normalized weight on each category score.
func applyWeights(scores *match.CategoryScores, norm match.WeightMap) {
	scores.Skills.Weight = int(math.Round(norm.Skills))
	scores.Experience.Weight = int(math.Round(norm.Experience))
	scores.Education.Weight = int(math.Round(norm.Education))
	scores.Additional.Weight = int(math.Round(norm.Additional))
}
