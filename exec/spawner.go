// File: exec/spawner.go
// Package exec glues the Executor to the api.Spawner contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ExecutorSpawner implements the api.Spawner interface by delegating
// to an Executor, so production code written against api.Spawner runs
// unchanged on the real pool or on mock.Spawner.

package exec

import "github.com/momentics/hioload-mock/api"

var _ api.Spawner = (*ExecutorSpawner)(nil)

// ExecutorSpawner wraps an Executor to satisfy the api.Spawner contract.
type ExecutorSpawner struct {
	exec *Executor
}

// NewExecutorSpawner constructs an api.Spawner backed by e.
func NewExecutorSpawner(e *Executor) *ExecutorSpawner {
	return &ExecutorSpawner{exec: e}
}

// Spawn dispatches a task function to be executed asynchronously.
// Returns an error if the executor has been closed.
func (s *ExecutorSpawner) Spawn(task api.TaskFunc) error {
	return s.exec.Submit(task)
}
