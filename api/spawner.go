// File: api/spawner.go
// Package api defines the Spawner contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// TaskFunc is a unit of asynchronous work handed to a Spawner.
type TaskFunc func()

// Spawner schedules a unit of asynchronous work on an executor.
type Spawner interface {
	// Spawn submits task for execution. It never blocks on the task
	// itself; an error indicates the executor rejected the submission.
	Spawn(task TaskFunc) error
}
