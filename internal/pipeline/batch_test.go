package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"

	"jobfit/internal/config"
	"jobfit/internal/domain/job"
	"jobfit/internal/domain/match"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postings(n int) []job.Posting {
	out := make([]job.Posting, n)
	for i := range out {
		out[i] = job.Posting{ID: uuid.New(), Title: "Engineer", Company: "Acme"}
	}
	return out
}

func TestBatchScorer_RunKeepsInputOrder(t *testing.T) {
	jobs := postings(12)
	failing := jobs[3].ID
	scores := map[uuid.UUID]int{}
	for i, p := range jobs {
		scores[p.ID] = 50 + i
	}

	var mu sync.Mutex
	var events []Progress

	b := NewBatchScorer(config.BatchConfig{Workers: 3, RatePerSecond: 1000}, nil)
	sum, err := b.Run(context.Background(), uuid.New(), jobs,
		func(_ context.Context, p job.Posting) (match.Result, error) {
			if p.ID == failing {
				return match.Result{}, errors.New("boom")
			}
			return match.Result{JobID: p.ID, OverallScore: scores[p.ID]}, nil
		},
		func(ev Progress) {
			mu.Lock()
			events = append(events, ev)
			mu.Unlock()
		},
	)
	require.NoError(t, err)

	assert.Equal(t, 12, sum.Total)
	assert.Equal(t, 11, sum.Succeeded)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, 0, sum.Skipped)
	for i, it := range sum.Items {
		assert.Equal(t, jobs[i].ID, it.JobID)
		if it.JobID == failing {
			assert.Error(t, it.Err)
			assert.Nil(t, it.Result)
			continue
		}
		require.NotNil(t, it.Result)
		assert.Equal(t, 50+i, it.Result.OverallScore)
	}

	require.Len(t, events, 12)
	assert.Equal(t, 12, events[11].Done)
	assert.Equal(t, 1, events[11].Failed)
}

func TestBatchScorer_CancelStopsNewWork(t *testing.T) {
	jobs := postings(10)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := NewBatchScorer(config.BatchConfig{Workers: 1}, nil)
	sum, err := b.Run(ctx, uuid.New(), jobs, func(_ context.Context, p job.Posting) (match.Result, error) {
		cancel()
		return match.Result{JobID: p.ID, OverallScore: 80}, nil
	}, nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, sum.Succeeded)
	assert.Equal(t, 9, sum.Skipped)
	require.NotNil(t, sum.Items[0].Result)
	assert.True(t, sum.Items[9].Skipped)
}

func TestBatchScorer_Empty(t *testing.T) {
	sum, err := NewBatchScorer(config.BatchConfig{}, nil).Run(context.Background(), uuid.New(), nil, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, sum.Total)
	assert.Empty(t, sum.Items)
}

func TestWorkerPool_SubmitAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewWorkerPool(2, 0)
	out := p.Run(ctx)
	assert.False(t, p.Submit(ctx, func(context.Context) Result { return Result{} }))
	p.Close()
	p.Close()

	n := 0
	for range out {
		n++
	}
	assert.Zero(t, n)
}
