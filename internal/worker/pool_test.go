package worker_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgoodwin/quoteforge/internal/worker"
)

func TestPool_RunsTasks(t *testing.T) {
	p := worker.NewPool(2, 8, slog.New(slog.NewTextHandler(io.Discard, nil)))

	var count atomic.Int32

	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)

		err := p.Submit(func(_ context.Context) {
			defer wg.Done()
			count.Add(1)
		})
		require.NoError(t, err)
	}

	wg.Wait()
	assert.Equal(t, int32(5), count.Load())

	require.NoError(t, p.Shutdown(context.Background()))
}

func TestPool_PanicDoesNotKillWorker(t *testing.T) {
	p := worker.NewPool(1, 4, slog.New(slog.NewTextHandler(io.Discard, nil)))

	done := make(chan struct{})

	require.NoError(t, p.Submit(func(_ context.Context) {
		panic("boom")
	}))
	require.NoError(t, p.Submit(func(_ context.Context) {
		close(done)
	}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not survive the panic")
	}

	require.NoError(t, p.Shutdown(context.Background()))
}

func TestPool_FullQueue(t *testing.T) {
	p := worker.NewPool(1, 1, slog.New(slog.NewTextHandler(io.Discard, nil)))

	block := make(chan struct{})
	started := make(chan struct{})

	require.NoError(t, p.Submit(func(_ context.Context) {
		close(started)
		<-block
	}))
	<-started

	// One slot in the queue, then it overflows.
	require.NoError(t, p.Submit(func(_ context.Context) {}))
	assert.ErrorIs(t, p.Submit(func(_ context.Context) {}), worker.ErrQueueFull)

	close(block)
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestPool_SubmitAfterShutdown(t *testing.T) {
	p := worker.NewPool(1, 1, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, p.Shutdown(context.Background()))

	assert.Error(t, p.Submit(func(_ context.Context) {}))
}

func TestPool_ShutdownDrainsQueue(t *testing.T) {
	p := worker.NewPool(1, 4, slog.New(slog.NewTextHandler(io.Discard, nil)))

	var count atomic.Int32

	for i := 0; i < 3; i++ {
		require.NoError(t, p.Submit(func(_ context.Context) {
			time.Sleep(10 * time.Millisecond)
			count.Add(1)
		}))
	}

	require.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, int32(3), count.Load())
}
