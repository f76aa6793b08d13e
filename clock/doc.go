// Package clock
// Author: momentics <momentics@gmail.com>
//
// Wall-clock implementations of the api.Ticker and api.Timer contracts,
// backed by the time package, plus a monotonic nanosecond clock. These
// are the real collaborators that the mock package replaces in tests.
package clock
