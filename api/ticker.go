// File: api/ticker.go
// Package api defines the Ticker contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "context"

// Ticker yields periodically. It is the consumer-side shape of the
// runtime's periodic timer; implementations decide whether ticks come
// from the wall clock or from a test script.
type Ticker interface {
	// Next blocks until the next tick fires or ctx is done.
	Next(ctx context.Context) error

	// Poll reports whether a tick is ready without blocking. A true
	// result consumes the tick.
	Poll() bool

	// Stop releases the ticker's resources. No tick fires after Stop.
	Stop()
}
