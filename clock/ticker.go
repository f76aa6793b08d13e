// File: clock/ticker.go
// Package clock wraps time.Ticker behind the api.Ticker contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package clock

import (
	"context"
	"time"

	"github.com/momentics/hioload-mock/api"
)

var _ api.Ticker = (*Ticker)(nil)

// Ticker delivers real wall-clock ticks at a fixed interval.
type Ticker struct {
	t *time.Ticker
}

// NewTicker creates a Ticker firing every d. Panics if d <= 0, matching
// time.NewTicker.
func NewTicker(d time.Duration) *Ticker {
	return &Ticker{t: time.NewTicker(d)}
}

// Next blocks until the next tick fires or ctx is done.
func (t *Ticker) Next(ctx context.Context) error {
	select {
	case <-t.t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Poll reports whether a tick is ready, consuming it if so.
func (t *Ticker) Poll() bool {
	select {
	case <-t.t.C:
		return true
	default:
		return false
	}
}

// Stop releases the ticker's resources.
func (t *Ticker) Stop() {
	t.t.Stop()
}
