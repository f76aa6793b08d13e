// File: mock/errors.go
// Package mock error types.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mock

import "fmt"

// CountError reports that a mock's method was called a different number
// of times than the mock was constructed to expect.
type CountError struct {
	Op       string // "spawn" or "next"
	Expected int
	Actual   int
}

// Error implements the error interface.
func (e *CountError) Error() string {
	if e.Op == "spawn" {
		return fmt.Sprintf("expected to spawn %d task(s), actually spawned %d", e.Expected, e.Actual)
	}
	return fmt.Sprintf("expected to call %s %d time(s), actually called %d", e.Op, e.Expected, e.Actual)
}

// Is makes CountError values with equal fields match via errors.Is.
func (e *CountError) Is(target error) bool {
	t, ok := target.(*CountError)
	if !ok {
		return false
	}
	return e.Op == t.Op && e.Expected == t.Expected && e.Actual == t.Actual
}
