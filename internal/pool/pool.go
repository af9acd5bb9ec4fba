// Package pool is the execution coordinator boundary: work is submitted as
// tasks and observed through futures, so callers never know whether the
// slots behind the coordinator are local goroutines or something remote.
package pool

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Task is one unit of submitted work.
type Task func(ctx context.Context) (any, error)

// Coordinator dispatches tasks onto a bounded set of execution slots.
type Coordinator interface {
	// Submit hands the task to an execution slot, blocking the caller
	// until one is free to take it. The returned future resolves exactly
	// once.
	Submit(ctx context.Context, t Task) *Future
	// Workers is the number of concurrent slots.
	Workers() int
}

// WorkerFailure reports a task that the pool could not run to completion:
// a panic inside the task or a pool already shut down. It is distinct from
// an error the task itself returned.
type WorkerFailure struct {
	Reason string
	Panic  any
}

func (e *WorkerFailure) Error() string {
	if e.Panic != nil {
		return fmt.Sprintf("worker failure: panic: %v", e.Panic)
	}
	return "worker failure: " + e.Reason
}

// Future is the handle to one submitted task.
type Future struct {
	done  chan struct{}
	value any
	err   error
}

func newFuture() *Future { return &Future{done: make(chan struct{})} }

func (f *Future) resolve(value any, err error) {
	f.value = value
	f.err = err
	close(f.done)
}

// Wait blocks until the task resolves or ctx is done. A context error
// abandons the wait, not the task.
func (f *Future) Wait(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type job struct {
	ctx    context.Context
	task   Task
	future *Future
}

// Local is the in-process Coordinator: a fixed pool of workers draining a
// shared queue. The worker count is the resource allotment boundary; a
// scheduler that grants more slots just constructs a bigger pool.
type Local struct {
	workers int
	jobs    chan job
	wg      sync.WaitGroup

	mu     sync.Mutex
	closed bool

	log *zap.Logger
}

// NewLocal starts a pool with the given number of workers.
func NewLocal(workers int, log *zap.Logger) *Local {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	l := &Local{
		workers: workers,
		jobs:    make(chan job),
		log:     log,
	}
	l.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go l.worker(i)
	}
	return l
}

func (l *Local) Workers() int { return l.workers }

// Submit hands the task to a worker, blocking while all workers are busy;
// that backpressure is what bounds concurrency to the slot count. After
// Close, the future resolves immediately with a WorkerFailure.
func (l *Local) Submit(ctx context.Context, t Task) *Future {
	f := newFuture()
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		f.resolve(nil, &WorkerFailure{Reason: "pool is shut down"})
		return f
	}
	l.jobs <- job{ctx: ctx, task: t, future: f}
	return f
}

// Close stops accepting work and waits for in-flight tasks to finish.
func (l *Local) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.mu.Unlock()
	close(l.jobs)
	l.wg.Wait()
}

func (l *Local) worker(id int) {
	defer l.wg.Done()
	for j := range l.jobs {
		if err := j.ctx.Err(); err != nil {
			j.future.resolve(nil, err)
			continue
		}
		l.run(id, j)
	}
}

// run executes one task, converting a panic into a WorkerFailure so a bad
// case cannot take the whole pool down.
func (l *Local) run(id int, j job) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("task panicked", zap.Int("worker", id), zap.Any("panic", r))
			j.future.resolve(nil, &WorkerFailure{Reason: "task panicked", Panic: r})
		}
	}()
	v, err := j.task(j.ctx)
	j.future.resolve(v, err)
}
