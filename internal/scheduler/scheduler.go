package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/BankerBot_Go/internal/worker"
)

// Scheduler enqueues jobs onto a worker pool at fixed intervals. Each
// Schedule call runs its own ticker goroutine; Stop ends them all.
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
}

// New creates a scheduler backed by the given pool
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. Enqueue blocks when
// the pool's queue is full, which holds the ticker back rather than piling
// up duplicate runs.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.workerPool.Enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop ends all scheduled jobs and waits for the tickers to exit
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
}
