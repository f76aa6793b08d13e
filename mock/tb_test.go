package mock_test

import "fmt"

// recordingTB captures Errorf output and deferred cleanups so the
// Expect constructors can be tested without failing the real test.
type recordingTB struct {
	cleanups []func()
	errors   []string
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Cleanup(fn func()) {
	r.cleanups = append(r.cleanups, fn)
}

func (r *recordingTB) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

// finish runs registered cleanups in LIFO order, as testing.TB does.
func (r *recordingTB) finish() {
	for i := len(r.cleanups) - 1; i >= 0; i-- {
		r.cleanups[i]()
	}
}
