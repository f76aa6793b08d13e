// File: clock/clock_stub.go
// Package clock portable monotonic clock fallback.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build !linux

package clock

func nowNanos() int64 {
	return fallbackNanos()
}
