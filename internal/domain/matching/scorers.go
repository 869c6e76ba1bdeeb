package matching

import "jobfit/internal/catalog"

// Scorers computes the four category scores. Each score is clamped to [0,100].
type Scorers struct {
	cat       *catalog.Catalog
	extractor *Extractor
	gaps      *GapAnalyzer
}

func NewScorers(cat *catalog.Catalog, e *Extractor, g *GapAnalyzer) *Scorers {
	return &Scorers{cat: cat, extractor: e, gaps: g}
}

func clampScore(v int) int {
	return clampInt(v, 0, 100)
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
