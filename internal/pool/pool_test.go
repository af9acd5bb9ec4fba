package pool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAndWait(t *testing.T) {
	l := NewLocal(2, nil)
	defer l.Close()

	f := l.Submit(context.Background(), func(context.Context) (any, error) {
		return 42, nil
	})
	v, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestTaskErrorPassesThrough(t *testing.T) {
	l := NewLocal(1, nil)
	defer l.Close()

	boom := errors.New("boom")
	f := l.Submit(context.Background(), func(context.Context) (any, error) {
		return nil, boom
	})
	_, err := f.Wait(context.Background())
	assert.ErrorIs(t, err, boom)

	var wf *WorkerFailure
	assert.False(t, errors.As(err, &wf), "a task error is not a worker failure")
}

func TestPanicBecomesWorkerFailure(t *testing.T) {
	l := NewLocal(1, nil)
	defer l.Close()

	f := l.Submit(context.Background(), func(context.Context) (any, error) {
		panic("bad index")
	})
	_, err := f.Wait(context.Background())

	var wf *WorkerFailure
	require.True(t, errors.As(err, &wf))
	assert.Equal(t, "bad index", wf.Panic)

	// pool still serves work after the panic
	g := l.Submit(context.Background(), func(context.Context) (any, error) {
		return "ok", nil
	})
	v, err := g.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestConcurrencyBoundedByWorkers(t *testing.T) {
	const workers = 3
	l := NewLocal(workers, nil)
	defer l.Close()

	var running, peak atomic.Int32
	block := make(chan struct{})

	// submit from goroutines: the queue is unbuffered and submits block
	// until a worker picks the job up
	futures := make(chan *Future, 10)
	for i := 0; i < 10; i++ {
		go func() {
			futures <- l.Submit(context.Background(), func(context.Context) (any, error) {
				n := running.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				<-block
				running.Add(-1)
				return nil, nil
			})
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(block)
	for i := 0; i < 10; i++ {
		f := <-futures
		_, err := f.Wait(context.Background())
		require.NoError(t, err)
	}
	assert.LessOrEqual(t, peak.Load(), int32(workers))
	assert.Equal(t, workers, l.Workers())
}

func TestSubmitAfterClose(t *testing.T) {
	l := NewLocal(1, nil)
	l.Close()

	f := l.Submit(context.Background(), func(context.Context) (any, error) {
		return nil, nil
	})
	_, err := f.Wait(context.Background())

	var wf *WorkerFailure
	require.True(t, errors.As(err, &wf))
}

func TestWaitHonorsContext(t *testing.T) {
	l := NewLocal(1, nil)
	defer l.Close()

	block := make(chan struct{})
	defer close(block)
	f := l.Submit(context.Background(), func(context.Context) (any, error) {
		<-block
		return nil, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := f.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
