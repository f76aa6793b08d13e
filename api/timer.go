// File: api/timer.go
// Package api defines the Timer contract and its factory shape.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import (
	"context"
	"time"
)

// Timer fires once after the duration it was armed with.
type Timer interface {
	// Wait blocks until the timer fires or ctx is done.
	Wait(ctx context.Context) error

	// Poll reports whether the timer has fired without blocking. A
	// true result consumes the expiry.
	Poll() bool

	// Duration returns the duration the timer was armed with.
	Duration() time.Duration
}

// AfterFunc constructs a Timer that fires after d. Production code
// takes an AfterFunc instead of calling a concrete constructor so that
// tests can substitute mock timers.
type AfterFunc func(d time.Duration) Timer
