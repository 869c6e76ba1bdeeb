package pipeline

import (
	"context"
	"log/slog"
	"time"

	"jobfit/internal/config"
	"jobfit/internal/domain/job"
	"jobfit/internal/domain/match"

	"github.com/google/uuid"
)

// ScoreFunc scores one posting. It must be safe for concurrent use.
type ScoreFunc func(ctx context.Context, p job.Posting) (match.Result, error)

type Progress struct {
	UserID uuid.UUID `json:"user_id"`
	JobID  uuid.UUID `json:"job_id"`
	Done   int       `json:"done"`
	Total  int       `json:"total"`
	Failed int       `json:"failed"`
	Score  int       `json:"score,omitempty"`
	Error  string    `json:"error,omitempty"`
}

type ProgressFunc func(Progress)

type BatchItem struct {
	JobID   uuid.UUID     `json:"job_id"`
	Result  *match.Result `json:"result,omitempty"`
	Err     error         `json:"-"`
	Skipped bool          `json:"skipped,omitempty"`
}

type BatchSummary struct {
	UserID    uuid.UUID     `json:"user_id"`
	Total     int           `json:"total"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Skipped   int           `json:"skipped"`
	Duration  time.Duration `json:"duration"`
	Items     []BatchItem   `json:"items"`
}

// BatchScorer fans a profile's postings out over a worker pool.
type BatchScorer struct {
	workers int
	rps     float64
	log     *slog.Logger
}

func NewBatchScorer(cfg config.BatchConfig, logger *slog.Logger) *BatchScorer {
	if logger == nil {
		logger = slog.Default()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	return &BatchScorer{workers: workers, rps: cfg.RatePerSecond, log: logger}
}

// Run scores every posting. Items are returned in input order. When ctx is
// cancelled the postings not yet started are marked skipped and ctx.Err() is
// returned alongside the partial summary.
func (b *BatchScorer) Run(ctx context.Context, userID uuid.UUID, jobs []job.Posting, score ScoreFunc, progress ProgressFunc) (BatchSummary, error) {
	start := time.Now()
	sum := BatchSummary{UserID: userID, Total: len(jobs), Items: make([]BatchItem, len(jobs))}
	for i, p := range jobs {
		sum.Items[i] = BatchItem{JobID: p.ID, Skipped: true}
	}
	if len(jobs) == 0 {
		return sum, nil
	}

	b.log.Info("batch started", "pipeline", "batch", "status", "started", "user_id", userID, "jobs", len(jobs), "workers", b.workers)

	pool := NewWorkerPool(b.workers, b.workers*2)
	pool.SetRateLimit(b.rps)
	results := pool.Run(ctx)

	go func() {
		defer pool.Close()
		for i, p := range jobs {
			i, p := i, p
			ok := pool.Submit(ctx, func(ctx context.Context) Result {
				res, err := score(ctx, p)
				if err != nil {
					sum.Items[i] = BatchItem{JobID: p.ID, Err: err}
					return Result{Index: i, Err: err}
				}
				sum.Items[i] = BatchItem{JobID: p.ID, Result: &res}
				return Result{Index: i}
			})
			if !ok {
				return
			}
		}
	}()

	done := 0
	for r := range results {
		done++
		item := sum.Items[r.Index]
		ev := Progress{UserID: userID, JobID: item.JobID, Done: done, Total: sum.Total}
		if r.Err != nil {
			sum.Failed++
			ev.Error = r.Err.Error()
			b.log.Warn("batch item failed", "pipeline", "batch", "status", "error", "user_id", userID, "job_id", item.JobID, "error", r.Err)
		} else {
			sum.Succeeded++
			ev.Score = item.Result.OverallScore
		}
		ev.Failed = sum.Failed
		if progress != nil {
			progress(ev)
		}
	}

	sum.Skipped = sum.Total - sum.Succeeded - sum.Failed
	sum.Duration = time.Since(start)
	b.log.Info("batch finished", "pipeline", "batch", "status", "finished", "user_id", userID,
		"succeeded", sum.Succeeded, "failed", sum.Failed, "skipped", sum.Skipped, "duration", sum.Duration)

	if sum.Skipped > 0 {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
	}
	return sum, nil
}
