// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake returns a FakeClock initialized to the given time. Time stands
// still until Advance is called. Sleep registers a pending sleeper
// that wakes when the clock advances past its deadline.
//
// FakeClock is safe for concurrent use by multiple goroutines.
func Fake(initial time.Time) *FakeClock {
	clock := &FakeClock{
		current: initial,
	}
	clock.sleepersChanged = sync.NewCond(&clock.mu)
	return clock
}

// FakeClock is a deterministic Clock for testing. Time advances only
// when Advance is called. Sleeping goroutines block until the clock is
// advanced past their deadline.
type FakeClock struct {
	mu              sync.Mutex
	current         time.Time
	sleepers        []*sleeper
	sleepersChanged *sync.Cond
}

// sleeper represents one goroutine blocked in Sleep.
type sleeper struct {
	deadline time.Time

	// wake receives the fire time when the clock advances past the
	// deadline. Buffered so Advance never blocks on a sleeper.
	wake chan time.Time
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Sleep pauses the calling goroutine until the clock advances past
// the deadline. If d <= 0, returns immediately without registering a
// sleeper.
func (c *FakeClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}

	c.mu.Lock()
	waiter := &sleeper{
		deadline: c.current.Add(d),
		wake:     make(chan time.Time, 1),
	}
	c.sleepers = append(c.sleepers, waiter)
	c.sleepersChanged.Broadcast()
	c.mu.Unlock()

	<-waiter.wake
}

// Advance moves the clock forward by d and wakes all sleepers whose
// deadlines fall within the new time, in deadline order for
// determinism. A goroutine woken by Advance that immediately sleeps
// again registers a fresh sleeper against the advanced time.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	target := c.current

	var toWake []*sleeper
	var remaining []*sleeper
	for _, waiter := range c.sleepers {
		if !waiter.deadline.After(target) {
			toWake = append(toWake, waiter)
		} else {
			remaining = append(remaining, waiter)
		}
	}
	c.sleepers = remaining
	c.mu.Unlock()

	sort.Slice(toWake, func(i, j int) bool {
		return toWake[i].deadline.Before(toWake[j].deadline)
	})
	for _, waiter := range toWake {
		waiter.wake <- target
	}
}

// WaitForSleepers blocks until at least n goroutines are blocked in
// Sleep. This synchronization primitive eliminates the race between a
// goroutine entering Sleep and the test advancing the clock.
//
// Example:
//
//	go func() { result <- sampler.CPUUsage(5) }()
//	fakeClock.WaitForSleepers(1)        // blocks until Sleep registers
//	fakeClock.Advance(5 * time.Second)  // deterministically wakes it
func (c *FakeClock) WaitForSleepers(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for len(c.sleepers) < n {
		c.sleepersChanged.Wait()
	}
}

// PendingSleepers returns the number of goroutines currently blocked
// in Sleep. Useful for test assertions.
func (c *FakeClock) PendingSleepers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sleepers)
}
