package usecase

import (
	"context"
	"time"

	"jobfit/internal/domain/job"
	"jobfit/internal/domain/match"
	"jobfit/internal/pipeline"

	"github.com/google/uuid"
)

const batchLockTTL = 10 * time.Minute

type ProgressPublisher interface {
	PublishProgress(p pipeline.Progress)
}

type BatchUsecase interface {
	ScoreAll(ctx context.Context, userID uuid.UUID, weights *match.WeightMap) (pipeline.BatchSummary, error)
}

// Batch scores all of a user's saved postings through the batch scorer and
// reuses the matching usecase for persistence and caching.
type Batch struct {
	matching  *Matching
	scorer    *pipeline.BatchScorer
	publisher ProgressPublisher
}

func NewBatchUsecase(m *Matching, scorer *pipeline.BatchScorer, publisher ProgressPublisher) *Batch {
	return &Batch{matching: m, scorer: scorer, publisher: publisher}
}

func (u *Batch) ScoreAll(ctx context.Context, userID uuid.UUID, weights *match.WeightMap) (pipeline.BatchSummary, error) {
	if userID == uuid.Nil {
		return pipeline.BatchSummary{}, invalid("user_id is required")
	}
	if err := checkWeights(weights); err != nil {
		return pipeline.BatchSummary{}, err
	}

	log := u.matching.log
	if c := u.matching.cache; c != nil && c.Available() {
		key := batchLockKey(userID)
		ok, err := c.SetIfNotExists(ctx, key, "1", batchLockTTL)
		if err == nil && !ok {
			return pipeline.BatchSummary{}, ErrBatchInProgress
		}
		if ok {
			defer func() {
				if err := c.Delete(context.WithoutCancel(ctx), key); err != nil {
					log.Warn("batch lock release failed", "user_id", userID, "error", err)
				}
			}()
		}
	}

	prof, posts, err := u.matching.profileWithPostings(ctx, userID)
	if err != nil {
		return pipeline.BatchSummary{}, err
	}

	var progress pipeline.ProgressFunc
	if u.publisher != nil {
		progress = u.publisher.PublishProgress
	}

	return u.scorer.Run(ctx, userID, posts, func(ctx context.Context, p job.Posting) (match.Result, error) {
		return u.matching.score(ctx, prof, p, weights)
	}, progress)
}
