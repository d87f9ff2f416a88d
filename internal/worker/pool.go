// Package worker runs background tasks on a fixed pool of goroutines
// with a bounded queue. Voice processing and notification sends go
// through it so slow providers never block a request handler.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

var ErrQueueFull = errors.New("worker queue is full")

type Pool struct {
	tasks  chan func(ctx context.Context)
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewPool starts size workers over a queue of depth queueDepth.
func NewPool(size, queueDepth int, logger *slog.Logger) *Pool {
	if size <= 0 {
		size = 1
	}

	if queueDepth <= 0 {
		queueDepth = size
	}

	ctx, cancel := context.WithCancel(context.Background())

	p := &Pool{
		tasks:  make(chan func(ctx context.Context), queueDepth),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}

	for i := 0; i < size; i++ {
		p.wg.Add(1)

		go p.run()
	}

	return p
}

func (p *Pool) run() {
	defer p.wg.Done()

	for task := range p.tasks {
		p.execute(task)
	}
}

// execute isolates one task so a panic takes down neither the worker
// nor the process.
func (p *Pool) execute(task func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("worker task panicked", "panic", r)
		}
	}()

	task(p.ctx)
}

// Submit queues a task without blocking. A full queue is an error the
// caller surfaces rather than a stalled request.
func (p *Pool) Submit(task func(ctx context.Context)) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return errors.New("worker pool is shut down")
	}

	select {
	case p.tasks <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// Shutdown stops intake and waits for queued tasks to drain. The
// context passed to still-running tasks is cancelled only after the
// grace context expires.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}

	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	done := make(chan struct{})

	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		return ctx.Err()
	}
}
