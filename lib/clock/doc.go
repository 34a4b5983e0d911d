// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction for testability.
//
// Production code accepts a Clock interface parameter instead of calling
// time.Now or time.Sleep directly. In production, Real() provides the
// standard library behavior. In tests, Fake() provides a deterministic
// clock that advances only when Advance is called, so a test can drive
// a five-second sampling window without waiting five seconds.
//
// # Wiring Pattern
//
// Add a Clock field to structs that sleep:
//
//	type Sampler struct {
//	    clock clock.Clock
//	}
//
//	func (s *Sampler) sample(seconds int) {
//	    before := readCounters()
//	    s.clock.Sleep(time.Duration(seconds) * time.Second)
//	    after := readCounters()
//	    ...
//	}
//
// In tests, run the sampling call in a goroutine, wait for it to block
// with WaitForSleepers, then Advance the clock to wake it.
package clock
