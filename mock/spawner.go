// File: mock/spawner.go
// Package mock provides a recording api.Spawner substitute.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mock

import (
	"sync"

	"github.com/momentics/hioload-mock/api"
)

var _ api.Spawner = (*Spawner)(nil)

// Spawner is a recording substitute for api.Spawner. Spawn never runs
// the submitted task; it only stores it. The mock is constructed with
// the number of Spawn calls the test expects, verified by Done or by
// the cleanup registered through ExpectSpawns.
//
// A Spawner may be handed to multiple goroutines; recording is
// concurrency-safe.
type Spawner struct {
	mu       sync.Mutex
	expected int
	tasks    []api.TaskFunc
	done     bool
}

// NewSpawner creates a Spawner expecting exactly expect Spawn calls.
func NewSpawner(expect int) *Spawner {
	return &Spawner{expected: expect}
}

// TB is the subset of testing.TB used by the Expect constructors.
type TB interface {
	Helper()
	Cleanup(func())
	Errorf(format string, args ...any)
}

// ExpectSpawns creates a Spawner expecting exactly expect Spawn calls
// and registers the count check with tb.Cleanup. If Done is called
// before the test ends, the cleanup check is skipped.
func ExpectSpawns(tb TB, expect int) *Spawner {
	tb.Helper()
	s := NewSpawner(expect)
	tb.Cleanup(func() {
		s.mu.Lock()
		finished := s.done
		s.mu.Unlock()
		if finished {
			return
		}
		if err := s.Done(); err != nil {
			tb.Errorf("mock spawner: %v", err)
		}
	})
	return s
}

// Spawn records task without executing it and always accepts.
func (s *Spawner) Spawn(task api.TaskFunc) error {
	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()
	return nil
}

// TimesCalled returns how many tasks were spawned so far.
func (s *Spawner) TimesCalled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Tasks returns the recorded tasks in submission order. The slice is a
// copy; the tasks themselves may be invoked by the test if it wants to
// drive the spawned work synchronously.
func (s *Spawner) Tasks() []api.TaskFunc {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.TaskFunc, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Done checks that Spawn was called exactly the expected number of
// times. It marks the mock as verified, disarming any cleanup check
// registered by ExpectSpawns.
func (s *Spawner) Done() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done = true
	if len(s.tasks) != s.expected {
		return &CountError{Op: "spawn", Expected: s.expected, Actual: len(s.tasks)}
	}
	return nil
}
