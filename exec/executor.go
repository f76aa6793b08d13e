// File: exec/executor.go
// Package exec implements a worker-pool task executor.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Executor dispatches tasks across worker goroutines through a shared
// buffered queue. Task panics are recovered and logged so a single bad
// task cannot take a worker down.

package exec

import (
	"runtime"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/momentics/hioload-mock/api"
	"github.com/momentics/hioload-mock/control"
)

// Executor manages a pool of worker goroutines.
type Executor struct {
	queue      chan api.TaskFunc // shared submission queue
	closeCh    chan struct{}     // signals executor shutdown
	closed     int32             // atomic flag: 1 if closed
	numWorkers int32
	wg         sync.WaitGroup
	logger     *zap.Logger

	// statistics
	totalTasks     int64
	completedTasks int64
	panickedTasks  int64
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger sets the logger used to report recovered task panics.
// The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Executor) { e.logger = l }
}

// NewExecutor creates an Executor with the given number of workers.
// If numWorkers <= 0, defaults to runtime.NumCPU().
func NewExecutor(numWorkers int, opts ...Option) *Executor {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	e := &Executor{
		queue:      make(chan api.TaskFunc, numWorkers*4),
		closeCh:    make(chan struct{}),
		numWorkers: int32(numWorkers),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go e.worker(i)
	}
	return e
}

// Submit enqueues a task for execution. A nil task is rejected with a
// structured *api.Error; submitting to a closed executor returns
// api.ErrSpawnerClosed.
func (e *Executor) Submit(task api.TaskFunc) error {
	if task == nil {
		return api.NewError(api.ErrCodeInvalidArgument, "nil task").
			WithContext("op", "submit")
	}
	if atomic.LoadInt32(&e.closed) == 1 {
		return api.ErrSpawnerClosed
	}
	select {
	case e.queue <- task:
		atomic.AddInt64(&e.totalTasks, 1)
		return nil
	case <-e.closeCh:
		return api.ErrSpawnerClosed
	}
}

// NumWorkers returns the number of worker goroutines.
func (e *Executor) NumWorkers() int {
	return int(atomic.LoadInt32(&e.numWorkers))
}

// Close shuts down the executor and waits for workers to exit. Tasks
// already dequeued finish; queued tasks not yet picked up are dropped.
func (e *Executor) Close() {
	if atomic.CompareAndSwapInt32(&e.closed, 0, 1) {
		close(e.closeCh)
	}
	e.wg.Wait()
}

// Stats returns basic executor counters.
func (e *Executor) Stats() map[string]int64 {
	return map[string]int64{
		"total_tasks":     atomic.LoadInt64(&e.totalTasks),
		"completed_tasks": atomic.LoadInt64(&e.completedTasks),
		"panicked_tasks":  atomic.LoadInt64(&e.panickedTasks),
		"num_workers":     int64(e.NumWorkers()),
	}
}

// PublishStats exports the executor counters into a metrics registry
// under the "exec." prefix.
func (e *Executor) PublishStats(reg *control.MetricsRegistry) {
	for k, v := range e.Stats() {
		reg.Set("exec."+k, v)
	}
}

func (e *Executor) worker(id int) {
	defer e.wg.Done()
	for {
		select {
		case task := <-e.queue:
			e.run(id, task)
		case <-e.closeCh:
			return
		}
	}
}

func (e *Executor) run(id int, task api.TaskFunc) {
	defer func() {
		if r := recover(); r != nil {
			atomic.AddInt64(&e.panickedTasks, 1)
			e.logger.Error("task panicked",
				zap.Int("worker", id),
				zap.Any("panic", r),
			)
			return
		}
		atomic.AddInt64(&e.completedTasks, 1)
	}()
	task()
}
