// Package api
// Author: momentics <momentics@gmail.com>
//
// Contracts for the runtime surface mocked by hioload-mock: task
// spawning, periodic ticking, and one-shot timers.
//
// Production code is written against these interfaces. The exec and
// clock packages provide implementations backed by the real runtime;
// the mock package provides recording substitutes so the same code can
// be unit-tested without worker goroutines or wall-clock time.
package api
