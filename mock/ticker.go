// File: mock/ticker.go
// Package mock provides a recording api.Ticker substitute.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mock

import (
	"context"
	"sync"

	"github.com/momentics/hioload-mock/api"
)

var _ api.Ticker = (*Ticker)(nil)

// Ticker is a recording substitute for api.Ticker. Ticks never come
// from the clock: Next is ready immediately, and Poll is ready after
// the configured number of pending (not-ready) polls has been consumed.
// The mock counts consumed ticks and verifies the count against the
// expectation it was constructed with.
type Ticker struct {
	mu       sync.Mutex
	expected int
	called   int
	pending  int
	stopped  bool
	done     bool
}

// NewTicker creates a Ticker expecting exactly expect consumed ticks.
func NewTicker(expect int) *Ticker {
	return &Ticker{expected: expect}
}

// ExpectTicks creates a Ticker expecting exactly expect consumed ticks
// and registers the count check with tb.Cleanup. If Done is called
// before the test ends, the cleanup check is skipped.
func ExpectTicks(tb TB, expect int) *Ticker {
	tb.Helper()
	t := NewTicker(expect)
	tb.Cleanup(func() {
		t.mu.Lock()
		finished := t.done
		t.mu.Unlock()
		if finished {
			return
		}
		if err := t.Done(); err != nil {
			tb.Errorf("mock ticker: %v", err)
		}
	})
	return t
}

// SetPending configures the next n Poll calls to report not-ready.
// A Ticker with no pending polls configured is ready immediately.
func (t *Ticker) SetPending(n int) {
	t.mu.Lock()
	t.pending = n
	t.mu.Unlock()
}

// Next consumes one tick. It is immediately ready regardless of any
// pending polls still configured: a blocking wait stands for "poll
// until ready". Returns ctx.Err() if ctx is already done, and
// api.ErrStopped after Stop; neither consumes a tick.
func (t *Ticker) Next(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return api.ErrStopped
	}
	t.pending = 0
	t.called++
	return nil
}

// Poll reports not-ready for each configured pending poll, then
// consumes one tick and reports ready. A stopped ticker is never
// ready.
func (t *Ticker) Poll() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return false
	}
	if t.pending > 0 {
		t.pending--
		return false
	}
	t.called++
	return true
}

// Stop records that the ticker was stopped. Recorded counts are kept;
// no tick is consumed afterwards.
func (t *Ticker) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
}

// Stopped reports whether Stop was called.
func (t *Ticker) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// TimesCalled returns how many ticks were consumed so far.
func (t *Ticker) TimesCalled() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.called
}

// Done checks that exactly the expected number of ticks was consumed.
// It marks the mock as verified, disarming any cleanup check
// registered by ExpectTicks.
func (t *Ticker) Done() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done = true
	if t.called != t.expected {
		return &CountError{Op: "next", Expected: t.expected, Actual: t.called}
	}
	return nil
}
