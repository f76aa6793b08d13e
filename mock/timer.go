// File: mock/timer.go
// Package mock provides a recording api.Timer substitute.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mock

import (
	"context"
	"sync"
	"time"

	"github.com/momentics/hioload-mock/api"
)

var _ api.Timer = (*Timer)(nil)

// Timer is a recording substitute for api.Timer. It never tracks real
// time: Wait is immediately ready, and Poll is ready after the
// configured pending polls. When the timer fires it records the
// duration it was armed with into its TimerLog, exactly once.
type Timer struct {
	mu      sync.Mutex
	d       time.Duration
	pending int
	fired   bool
	log     *TimerLog
}

// After creates a mock timer armed with d, recording into DefaultLog.
func After(d time.Duration) *Timer {
	return DefaultLog.After(d)
}

// AfterFunc adapts the package-level After constructor to the
// api.AfterFunc factory shape.
func AfterFunc() api.AfterFunc {
	return DefaultLog.AfterFunc()
}

// After creates a mock timer armed with d, recording into l.
func (l *TimerLog) After(d time.Duration) *Timer {
	return &Timer{d: d, log: l}
}

// AfterFunc adapts the log's After constructor to the api.AfterFunc
// factory shape, for injection into code under test.
func (l *TimerLog) AfterFunc() api.AfterFunc {
	return func(d time.Duration) api.Timer {
		return l.After(d)
	}
}

// SetPending configures the next n Poll calls to report not-ready.
func (t *Timer) SetPending(n int) {
	t.mu.Lock()
	t.pending = n
	t.mu.Unlock()
}

// Wait fires the timer immediately, recording its duration on first
// fire. Returns ctx.Err() if ctx is already done, without firing.
func (t *Timer) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	t.pending = 0
	t.fire()
	t.mu.Unlock()
	return nil
}

// Poll reports not-ready for each configured pending poll, then fires
// the timer and reports ready.
func (t *Timer) Poll() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending > 0 {
		t.pending--
		return false
	}
	t.fire()
	return true
}

// Duration returns the duration the timer was armed with.
func (t *Timer) Duration() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.d
}

// Fired reports whether the timer has fired.
func (t *Timer) Fired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fired
}

// fire records the armed duration on the first call. Callers hold t.mu.
func (t *Timer) fire() {
	if t.fired {
		return
	}
	t.fired = true
	t.log.record(t.d)
}
