// Package matching scores candidate profiles against job postings and turns
// the differences into gap reports, learning paths and trend reports. Every
// function here is a pure transformation of its inputs.
package matching

import (
	"time"

	"jobfit/internal/catalog"
	"jobfit/internal/domain/job"
	"jobfit/internal/domain/match"
	"jobfit/internal/domain/skill"
	"jobfit/internal/domain/user"
)

// Version is stamped into every result's metadata.
const Version = "1.0.0"

type Engine struct {
	cat        *catalog.Catalog
	extractor  *Extractor
	gaps       *GapAnalyzer
	advisor    *ResourceAdvisor
	path       *PathBuilder
	trends     *TrendAnalyzer
	scorers    *Scorers
	aggregator *Aggregator
	now        func() time.Time
}

type Option func(*Engine)

// WithClock sets the clock used for open-ended positions and metadata timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func New(cat *catalog.Catalog, opts ...Option) *Engine {
	ex := NewExtractor(cat)
	ga := NewGapAnalyzer(cat)
	adv := NewResourceAdvisor(cat)
	e := &Engine{
		cat:        cat,
		extractor:  ex,
		gaps:       ga,
		advisor:    adv,
		path:       NewPathBuilder(cat),
		trends:     NewTrendAnalyzer(ex),
		scorers:    NewScorers(cat, ex, ga),
		aggregator: NewAggregator(adv),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

func (e *Engine) ExtractSkills(p job.Posting) []skill.Record {
	return e.extractor.Extract(p)
}

// AnalyzeGaps runs the single-job flow: extraction, gap analysis, learning
// resources and a learning path.
func (e *Engine) AnalyzeGaps(userSkills []skill.UserSkill, p job.Posting) skill.GapReport {
	a := e.gaps.Analyze(userSkills, e.extractor.Extract(p))
	return skill.GapReport{
		GapAnalysis:       a,
		LearningResources: e.advisor.Resources(a.Gaps()),
		LearningPath:      e.path.Build(a, userSkills),
	}
}

func (e *Engine) ScoreCategories(prof user.Profile, p job.Posting) match.CategoryScores {
	now := e.now()
	return match.CategoryScores{
		Skills:     e.scorers.ScoreSkills(p, prof),
		Experience: e.scorers.ScoreExperience(p, prof, now),
		Education:  e.scorers.ScoreEducation(p, prof),
		Additional: e.scorers.ScoreAdditional(p, prof, now),
	}
}

// CalculateMatch scores prof against p. A nil weights map means the default
// 40/30/15/15 split; only invalid weights produce an error.
func (e *Engine) CalculateMatch(prof user.Profile, p job.Posting, weights *match.WeightMap) (match.Result, error) {
	w := match.DefaultWeights()
	if weights != nil {
		w = *weights
	}
	res, err := e.aggregator.Aggregate(e.ScoreCategories(prof, p), w, prof, p, e.now())
	if err != nil {
		return match.Result{}, err
	}
	if weights != nil {
		custom := *weights
		res.CustomWeights = &custom
	}
	return res, nil
}

// Reweight returns a copy of r with its overall score recomputed from the
// stored category scores under weights.
func (e *Engine) Reweight(r match.Result, weights match.WeightMap) (match.Result, error) {
	overall, norm, err := RecalculateOverallScore(r.CategoryScores, weights)
	if err != nil {
		return match.Result{}, err
	}
	out := r
	applyWeights(&out.CategoryScores, norm)
	custom := weights
	out.CustomWeights = &custom
	out.OverallScore = overall
	out.Metadata.Weights = norm
	out.Metadata.Grade = match.GradeFor(overall)
	out.Metadata.CalculatedAt = e.now()
	return out, nil
}

func (e *Engine) CompareMatches(results []match.Result) match.Comparison {
	return CompareMatches(results)
}

func (e *Engine) AnalyzeTrends(jobs []job.Posting, userSkills []skill.UserSkill) skill.TrendReport {
	return e.trends.Analyze(jobs, userSkills)
}
