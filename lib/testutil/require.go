// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"time"
)

// failer is the slice of testing.TB that RequireReceive needs. Taking
// the interface keeps this package free of a testing import.
type failer interface {
	Helper()
	Fatalf(format string, args ...any)
}

// RequireReceive reads one value from ch within timeout, or fails the
// test. A goroutine wedged on a fake clock then fails with the given
// message instead of hanging the whole run.
//
//	usage := testutil.RequireReceive(t, results, 5*time.Second, "disk sample")
func RequireReceive[T any](t failer, ch <-chan T, timeout time.Duration, format string, args ...any) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		if !ok {
			t.Fatalf("channel closed without a value: %s", fmt.Sprintf(format, args...))
		}
		return v
	case <-time.After(timeout):
		t.Fatalf("timed out after %v: %s", timeout, fmt.Sprintf(format, args...))
	}
	panic("unreachable")
}
