// File: clock/clock_linux.go
// Package clock Linux monotonic clock via clock_gettime.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build linux

package clock

import "golang.org/x/sys/unix"

func nowNanos() int64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return fallbackNanos()
	}
	return ts.Nano()
}
