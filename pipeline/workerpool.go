package pipeline

import (
	"context"
	"sync"
)

// Job syllabifies one entry. Jobs report their outcome through a channel of
// their own, so a Job has no return value.
type Job func(ctx context.Context)

// WorkerPool executes jobs on a fixed set of goroutines, reading from a
// bounded queue.
type WorkerPool struct {
	queue   chan Job
	size    int
	running sync.WaitGroup
	mu      sync.Mutex // guards closed and sending on queue
	closed  bool
}

// NewWorkerPool prepares a pool of size goroutines with room for capacity
// waiting jobs. Non-positive arguments fall back to one worker and a queue
// twice the pool size.
func NewWorkerPool(size, capacity int) *WorkerPool {
	if size <= 0 {
		size = 1
	}
	if capacity <= 0 {
		capacity = 2 * size
	}
	return &WorkerPool{
		queue: make(chan Job, capacity),
		size:  size,
	}
}

// Start launches the workers. A worker exits when ctx is done or when the
// queue is closed and drained.
func (p *WorkerPool) Start(ctx context.Context) {
	p.running.Add(p.size)
	for i := 0; i < p.size; i++ {
		go p.work(ctx)
	}
}

func (p *WorkerPool) work(ctx context.Context) {
	defer p.running.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.queue:
			if !ok {
				return
			}
			job(ctx)
		}
	}
}

// Submit queues job, waiting for a free slot if the queue is full.
// It returns ErrPoolClosed after Close, or ctx.Err() if ctx is done first.
func (p *WorkerPool) Submit(ctx context.Context, job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}
	select {
	case p.queue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close rejects further jobs and waits until all workers have exited.
// Calling Close more than once is harmless.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()
	p.running.Wait()
}

// ErrPoolClosed is returned by Submit once the pool has been closed.
var ErrPoolClosed = &PoolError{"worker pool closed"}

// PoolError is the error type of the worker pool.
type PoolError struct{ msg string }

func (e *PoolError) Error() string { return e.msg }
