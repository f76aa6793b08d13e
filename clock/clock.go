// File: clock/clock.go
// Package clock monotonic time source.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package clock

import "time"

// NowNanos returns monotonic time in nanoseconds. The zero point is
// unspecified; only differences between readings are meaningful.
func NowNanos() int64 {
	return nowNanos()
}

var processStart = time.Now()

// fallbackNanos derives monotonic nanoseconds from the runtime's
// monotonic reading embedded in time.Time.
func fallbackNanos() int64 {
	return time.Since(processStart).Nanoseconds()
}
