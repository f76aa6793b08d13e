package mock_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/momentics/hioload-mock/api"
	"github.com/momentics/hioload-mock/mock"
)

func TestTimerDurationRoundTrip(t *testing.T) {
	log := mock.NewTimerLog()
	tm := log.After(time.Second)

	if got := tm.Duration(); got != time.Second {
		t.Errorf("Duration = %v, want %v", got, time.Second)
	}
}

func TestTimerRecordsDurationWhenAwaited(t *testing.T) {
	log := mock.NewTimerLog()
	tm := log.After(5 * time.Second)

	if err := tm.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}
	d, ok := log.TryRecv()
	if !ok || d != 5*time.Second {
		t.Errorf("TryRecv = (%v, %v), want (5s, true)", d, ok)
	}
}

func TestTimerNotRecordedWhenNotAwaited(t *testing.T) {
	log := mock.NewTimerLog()
	_ = log.After(2 * time.Second) // armed but never awaited

	if _, ok := log.TryRecv(); ok {
		t.Error("log recorded a timer that never fired")
	}
}

func TestTimerLogFIFOByAwaitOrder(t *testing.T) {
	log := mock.NewTimerLog()
	timer1 := log.After(500 * time.Millisecond)
	timer2 := log.After(time.Second)

	// timer1 is armed first, but timer2 is awaited first, so it is
	// first in the log.
	ctx := context.Background()
	if err := timer2.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	if err := timer1.Wait(ctx); err != nil {
		t.Fatal(err)
	}

	want := []time.Duration{time.Second, 500 * time.Millisecond}
	if diff := cmp.Diff(want, log.Durations()); diff != "" {
		t.Errorf("log order mismatch (-want +got):\n%s", diff)
	}
}

func TestTimerLogDropsBeyondCapacity(t *testing.T) {
	log := mock.NewTimerLog()
	ctx := context.Background()

	// The log holds 5 entries; the 6th await is dropped silently.
	var want []time.Duration
	for i := 1; i <= 6; i++ {
		d := time.Duration(i) * time.Millisecond
		if err := log.After(d).Wait(ctx); err != nil {
			t.Fatal(err)
		}
		if i <= 5 {
			want = append(want, d)
		}
	}

	if got := log.Len(); got != 5 {
		t.Fatalf("Len = %d, want 5", got)
	}
	if diff := cmp.Diff(want, log.Durations()); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestTimerRecordsOnlyOnce(t *testing.T) {
	log := mock.NewTimerLog()
	tm := log.After(time.Minute)

	ctx := context.Background()
	_ = tm.Wait(ctx)
	_ = tm.Wait(ctx)
	if !tm.Poll() {
		t.Fatal("fired timer reported not ready")
	}

	if got := log.Len(); got != 1 {
		t.Errorf("Len = %d, want 1", got)
	}
}

func TestTimerPendingPolls(t *testing.T) {
	log := mock.NewTimerLog()
	tm := log.After(time.Second)
	tm.SetPending(2)

	if tm.Poll() || tm.Poll() {
		t.Fatal("pending poll reported ready")
	}
	if !tm.Poll() {
		t.Fatal("3rd poll reported not ready")
	}
	if !tm.Fired() {
		t.Error("timer did not record firing")
	}
}

func TestTimerCanceledContextDoesNotFire(t *testing.T) {
	log := mock.NewTimerLog()
	tm := log.After(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := tm.Wait(ctx); err == nil {
		t.Fatal("Wait succeeded with canceled context")
	}
	if tm.Fired() {
		t.Error("canceled wait fired the timer")
	}
	if log.Len() != 0 {
		t.Error("canceled wait recorded a duration")
	}
}

func TestTimerLogClear(t *testing.T) {
	log := mock.NewTimerLog()
	ctx := context.Background()
	_ = log.After(time.Millisecond).Wait(ctx)
	_ = log.After(2 * time.Millisecond).Wait(ctx)

	log.Clear()

	if got := log.Len(); got != 0 {
		t.Errorf("Len after Clear = %d, want 0", got)
	}
	_ = log.After(time.Second).Wait(ctx)
	d, ok := log.TryRecv()
	if !ok || d != time.Second {
		t.Errorf("TryRecv = (%v, %v), want (1s, true)", d, ok)
	}
}

func TestDefaultLogAfter(t *testing.T) {
	mock.DefaultLog.Clear()

	if err := mock.After(3 * time.Second).Wait(context.Background()); err != nil {
		t.Fatal(err)
	}
	d, ok := mock.DefaultLog.TryRecv()
	if !ok || d != 3*time.Second {
		t.Errorf("TryRecv = (%v, %v), want (3s, true)", d, ok)
	}
}

// waitThenSignal is shaped like production code: it is handed a timer
// factory and has no idea whether time is real.
func waitThenSignal(ctx context.Context, after api.AfterFunc, d time.Duration, done chan<- struct{}) error {
	if err := after(d).Wait(ctx); err != nil {
		return err
	}
	done <- struct{}{}
	return nil
}

func TestAfterFuncInjection(t *testing.T) {
	log := mock.NewTimerLog()
	done := make(chan struct{}, 1)

	err := waitThenSignal(context.Background(), log.AfterFunc(), 30*time.Second, done)
	if err != nil {
		t.Fatal(err)
	}
	select {
	case <-done:
	default:
		t.Fatal("work after the timer did not run")
	}
	d, ok := log.TryRecv()
	if !ok || d != 30*time.Second {
		t.Errorf("TryRecv = (%v, %v), want (30s, true)", d, ok)
	}
}
