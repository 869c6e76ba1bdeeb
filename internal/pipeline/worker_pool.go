package pipeline

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

type Task func(ctx context.Context) Result

type Result struct {
	Index int
	Err   error
}

// WorkerPool runs submitted tasks on a fixed number of goroutines. Once the
// run context is cancelled workers stop taking queued tasks, but a task that
// already started runs to completion and its result is still delivered.
type WorkerPool struct {
	workers int
	tasks   chan Task
	limiter *rate.Limiter
	wg      sync.WaitGroup
	once    sync.Once
}

func NewWorkerPool(workers, buffer int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &WorkerPool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

// SetRateLimit caps task starts per second across all workers. Call before Run;
// rps <= 0 disables the limit.
func (p *WorkerPool) SetRateLimit(rps float64) {
	if p == nil {
		return
	}
	if rps <= 0 {
		p.limiter = nil
		return
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	p.limiter = rate.NewLimiter(rate.Limit(rps), burst)
}

// Submit queues t, blocking while the buffer is full. It returns false if ctx
// is cancelled first.
func (p *WorkerPool) Submit(ctx context.Context, t Task) bool {
	if p == nil || t == nil {
		return false
	}
	if ctx.Err() != nil {
		return false
	}
	select {
	case <-ctx.Done():
		return false
	case p.tasks <- t:
		return true
	}
}

func (p *WorkerPool) Close() {
	if p == nil {
		return
	}
	p.once.Do(func() { close(p.tasks) })
}

// Run starts the workers. The returned channel closes after Close has been
// called and every worker has exited; callers must drain it.
func (p *WorkerPool) Run(ctx context.Context) <-chan Result {
	if p == nil {
		out := make(chan Result)
		close(out)
		return out
	}
	out := make(chan Result, p.workers)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for t := range p.tasks {
				if ctx.Err() != nil {
					continue
				}
				if p.limiter != nil {
					if err := p.limiter.Wait(ctx); err != nil {
						continue
					}
				}
				out <- t(ctx)
			}
		}()
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}
