// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"testing"
	"time"
)

func TestFakeNowStandsStill(t *testing.T) {
	initial := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fake := Fake(initial)

	if got := fake.Now(); !got.Equal(initial) {
		t.Errorf("Now() = %v, want %v", got, initial)
	}
	if got := fake.Now(); !got.Equal(initial) {
		t.Errorf("second Now() = %v, want %v (time must not move on its own)", got, initial)
	}
}

func TestFakeAdvanceMovesNow(t *testing.T) {
	initial := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fake := Fake(initial)

	fake.Advance(5 * time.Second)

	want := initial.Add(5 * time.Second)
	if got := fake.Now(); !got.Equal(want) {
		t.Errorf("Now() after Advance = %v, want %v", got, want)
	}
}

func TestFakeSleepBlocksUntilAdvance(t *testing.T) {
	fake := Fake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	done := make(chan struct{})
	go func() {
		fake.Sleep(3 * time.Second)
		close(done)
	}()

	fake.WaitForSleepers(1)

	select {
	case <-done:
		t.Fatal("Sleep returned before the clock was advanced")
	default:
	}

	// Advancing short of the deadline must not wake the sleeper.
	fake.Advance(2 * time.Second)
	select {
	case <-done:
		t.Fatal("Sleep returned after advancing only 2s of a 3s sleep")
	case <-time.After(10 * time.Millisecond):
	}

	fake.Advance(1 * time.Second)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Sleep did not return after the clock advanced past its deadline")
	}
}

func TestFakeSleepZeroReturnsImmediately(t *testing.T) {
	fake := Fake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	done := make(chan struct{})
	go func() {
		fake.Sleep(0)
		fake.Sleep(-time.Second)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Sleep(0) blocked")
	}

	if got := fake.PendingSleepers(); got != 0 {
		t.Errorf("PendingSleepers() = %d, want 0 (non-positive sleeps must not register)", got)
	}
}

func TestFakeAdvanceWakesOnlyExpiredSleepers(t *testing.T) {
	fake := Fake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	woken := make(chan time.Duration, 2)
	for _, d := range []time.Duration{2 * time.Second, 1 * time.Second} {
		go func() {
			fake.Sleep(d)
			woken <- d
		}()
	}

	fake.WaitForSleepers(2)

	// First advance reaches only the 1s deadline.
	fake.Advance(1 * time.Second)
	if got := receiveDuration(t, woken); got != 1*time.Second {
		t.Errorf("first woken sleeper slept %v, want 1s", got)
	}
	if got := fake.PendingSleepers(); got != 1 {
		t.Errorf("PendingSleepers() after partial advance = %d, want 1", got)
	}

	fake.Advance(1 * time.Second)
	if got := receiveDuration(t, woken); got != 2*time.Second {
		t.Errorf("second woken sleeper slept %v, want 2s", got)
	}
}

func TestFakePendingSleepers(t *testing.T) {
	fake := Fake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	if got := fake.PendingSleepers(); got != 0 {
		t.Errorf("PendingSleepers() on fresh clock = %d, want 0", got)
	}

	done := make(chan struct{})
	go func() {
		fake.Sleep(time.Second)
		close(done)
	}()

	fake.WaitForSleepers(1)
	if got := fake.PendingSleepers(); got != 1 {
		t.Errorf("PendingSleepers() with one blocked goroutine = %d, want 1", got)
	}

	fake.Advance(time.Second)
	<-done
	if got := fake.PendingSleepers(); got != 0 {
		t.Errorf("PendingSleepers() after wake = %d, want 0", got)
	}
}

func TestRealSleepSleeps(t *testing.T) {
	start := time.Now()
	Real().Sleep(10 * time.Millisecond)
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Errorf("Real().Sleep(10ms) returned after %v", elapsed)
	}
}

func receiveDuration(t *testing.T, ch <-chan time.Duration) time.Duration {
	t.Helper()
	select {
	case d := <-ch:
		return d
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a woken sleeper")
		return 0
	}
}
