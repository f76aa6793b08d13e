// File: clock/timer.go
// Package clock wraps time.Timer behind the api.Timer contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package clock

import (
	"context"
	"time"

	"github.com/momentics/hioload-mock/api"
)

var _ api.Timer = (*Timer)(nil)
var _ api.AfterFunc = After

// Timer fires once, after the duration it was armed with.
type Timer struct {
	d time.Duration
	t *time.Timer
}

// After arms a Timer that fires after d. It matches the api.AfterFunc
// factory shape.
func After(d time.Duration) api.Timer {
	return &Timer{d: d, t: time.NewTimer(d)}
}

// Wait blocks until the timer fires or ctx is done. The expiry is
// delivered once; a second Wait on a fired timer blocks until ctx is
// done.
func (t *Timer) Wait(ctx context.Context) error {
	select {
	case <-t.t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Poll reports whether the timer has fired, consuming the expiry if so.
func (t *Timer) Poll() bool {
	select {
	case <-t.t.C:
		return true
	default:
		return false
	}
}

// Duration returns the duration the timer was armed with.
func (t *Timer) Duration() time.Duration {
	return t.d
}
