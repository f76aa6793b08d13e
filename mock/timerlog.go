// File: mock/timerlog.go
// Package mock provides the bounded duration log shared by mock timers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mock

import (
	"sync"
	"time"

	"github.com/eapache/queue"
)

// logCapacity bounds a TimerLog. Durations recorded beyond the bound
// are silently dropped; recording must never fail a timer.
const logCapacity = 5

// TimerLog is a bounded FIFO of the durations that mock timers were
// awaited with. Timers append to the log when they fire (Wait or a
// ready Poll), not when they are constructed, so the log order is the
// order the code under test actually waited in.
//
// Prefer one TimerLog per test (NewTimerLog) over DefaultLog when tests
// run in parallel.
type TimerLog struct {
	mu sync.Mutex
	q  *queue.Queue
}

// NewTimerLog creates an empty TimerLog.
func NewTimerLog() *TimerLog {
	return &TimerLog{q: queue.New()}
}

// DefaultLog is the process-wide log used by the package-level After
// constructor. Shared across all timers built with After; parallel
// tests using it will observe each other's durations.
var DefaultLog = NewTimerLog()

// record appends d, dropping it if the log is at capacity.
func (l *TimerLog) record(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.q.Length() >= logCapacity {
		return
	}
	l.q.Add(d)
}

// TryRecv pops the oldest recorded duration. The second result is
// false when the log is empty.
func (l *TimerLog) TryRecv() (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.q.Length() == 0 {
		return 0, false
	}
	return l.q.Remove().(time.Duration), true
}

// Durations returns a snapshot of the log in FIFO order without
// consuming it.
func (l *TimerLog) Durations() []time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]time.Duration, 0, l.q.Length())
	for i := 0; i < l.q.Length(); i++ {
		out = append(out, l.q.Get(i).(time.Duration))
	}
	return out
}

// Len returns the number of recorded durations.
func (l *TimerLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Length()
}

// Clear discards all recorded durations.
func (l *TimerLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for l.q.Length() > 0 {
		l.q.Remove()
	}
}
