package worker

import (
	"context"
	"sync"

	"github.com/osse101/BankerBot_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Pool represents a worker pool
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker drains the queue until the pool is stopped. A failed job is
// logged and the worker moves on; it never crashes the pool.
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			ctx := context.Background()
			if err := job.Process(ctx); err != nil {
				logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
			}
		case <-p.quit:
			// Finish whatever is still queued before exiting
			for {
				select {
				case job := <-p.jobQueue:
					ctx := context.Background()
					if err := job.Process(ctx); err != nil {
						logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
					}
				default:
					return
				}
			}
		}
	}
}

// Enqueue adds a job to the queue, blocking while the queue is full
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// Stop stops the workers and waits for queued jobs to finish
func (p *Pool) Stop() {
	close(p.quit)
	p.wg.Wait()
}
