package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"jobfit/internal/domain/job"
	"jobfit/internal/domain/match"
	"jobfit/internal/domain/matching"
	"jobfit/internal/domain/user"
	"jobfit/internal/repository"

	"github.com/google/uuid"
)

type MatchingUsecase interface {
	CalculateMatch(ctx context.Context, userID, jobID uuid.UUID, weights *match.WeightMap) (match.Result, error)
	Analyze(ctx context.Context, prof user.Profile, p job.Posting, weights *match.WeightMap) (match.Result, error)
	RecalculateWeights(ctx context.Context, matchID uuid.UUID, weights match.WeightMap) (match.Result, error)
}

type Matching struct {
	loader
	engine  *matching.Engine
	matches repository.MatchRepository
	cache   MatchCache
	ttl     time.Duration
}

func NewMatchingUsecase(
	engine *matching.Engine,
	profiles repository.ProfileRepository,
	jobs repository.JobPostingRepository,
	matches repository.MatchRepository,
	cache MatchCache,
	ttl time.Duration,
	logger *slog.Logger,
) *Matching {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matching{
		loader:  loader{profiles: profiles, jobs: jobs, log: logger},
		engine:  engine,
		matches: matches,
		cache:   cache,
		ttl:     ttl,
	}
}

// CalculateMatch scores a stored profile against a stored posting and
// persists the result. Identical inputs are served from the cache.
func (u *Matching) CalculateMatch(ctx context.Context, userID, jobID uuid.UUID, weights *match.WeightMap) (match.Result, error) {
	if userID == uuid.Nil || jobID == uuid.Nil {
		return match.Result{}, invalid("user_id and job_id are required")
	}
	if err := checkWeights(weights); err != nil {
		return match.Result{}, err
	}

	prof, post, err := u.pair(ctx, userID, jobID)
	if err != nil {
		return match.Result{}, err
	}
	return u.score(ctx, prof, post, weights)
}

// score computes, persists and caches one result for already prepared inputs.
func (u *Matching) score(ctx context.Context, prof user.Profile, post job.Posting, weights *match.WeightMap) (match.Result, error) {
	key, keyErr := matchCacheKey(prof.ID, post.ID, matching.Version, prof, post, weights)
	if keyErr == nil && u.cache != nil {
		var cached match.Result
		if found, err := u.cache.GetJSON(ctx, key, &cached); err == nil && found {
			u.log.Debug("match cache hit", "user_id", prof.ID, "job_id", post.ID)
			return cached, nil
		}
	}

	res, err := u.engine.CalculateMatch(prof, post, weights)
	if err != nil {
		return match.Result{}, u.engineError(err)
	}

	id, err := u.matches.Upsert(ctx, res)
	if err != nil {
		return match.Result{}, u.internal("store match", err, "user_id", prof.ID, "job_id", post.ID)
	}
	res.ID = id

	if keyErr == nil && u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, res, u.ttl); err != nil {
			u.log.Warn("match cache write failed", "user_id", prof.ID, "job_id", post.ID, "error", err)
		}
	}

	u.log.Info("match calculated", "user_id", prof.ID, "job_id", post.ID, "match_id", id,
		"overall_score", res.OverallScore, "grade", res.Metadata.Grade)
	return res, nil
}

// Analyze scores caller-supplied inputs without touching the store.
func (u *Matching) Analyze(ctx context.Context, prof user.Profile, p job.Posting, weights *match.WeightMap) (match.Result, error) {
	if err := checkWeights(weights); err != nil {
		return match.Result{}, err
	}
	prof, err := prepareProfile(prof)
	if err != nil {
		return match.Result{}, err
	}
	p, err = preparePosting(p)
	if err != nil {
		return match.Result{}, err
	}

	res, err := u.engine.CalculateMatch(prof, p, weights)
	if err != nil {
		return match.Result{}, u.engineError(err)
	}
	return res, nil
}

// RecalculateWeights re-derives a stored result's overall score under new
// weights. Category scores are reused as stored.
func (u *Matching) RecalculateWeights(ctx context.Context, matchID uuid.UUID, weights match.WeightMap) (match.Result, error) {
	if matchID == uuid.Nil {
		return match.Result{}, invalid("match_id is required")
	}
	if err := checkWeights(&weights); err != nil {
		return match.Result{}, err
	}

	stored, err := u.matches.FindByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return match.Result{}, ErrMatchNotFound
		}
		return match.Result{}, u.internal("load match", err, "match_id", matchID)
	}

	res, err := u.engine.Reweight(stored, weights)
	if err != nil {
		return match.Result{}, u.engineError(err)
	}

	id, err := u.matches.Upsert(ctx, res)
	if err != nil {
		return match.Result{}, u.internal("store match", err, "match_id", matchID)
	}
	res.ID = id

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, userMatchPattern(res.ProfileID)); err != nil {
			u.log.Warn("match cache invalidation failed", "user_id", res.ProfileID, "error", err)
		}
	}

	u.log.Info("match reweighted", "match_id", id, "overall_score", res.OverallScore, "previous_score", stored.OverallScore)
	return res, nil
}

func (u *Matching) engineError(err error) error {
	if errors.Is(err, match.ErrInvalidWeights) {
		return errors.Join(ErrInvalidInput, err)
	}
	return u.internal("calculate match", err)
}
