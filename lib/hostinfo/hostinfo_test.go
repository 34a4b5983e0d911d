// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package hostinfo

import (
	"runtime"
	"testing"
)

func TestProbePortableFacts(t *testing.T) {
	info := Probe()

	if info.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", info.OS, runtime.GOOS)
	}
	if info.Hostname == "" {
		t.Error("Hostname should not be empty on a live system")
	}
	if info.CPUCount < 1 {
		t.Errorf("CPUCount = %d, want >= 1", info.CPUCount)
	}
}

func TestEnv(t *testing.T) {
	t.Setenv("SYSPROBE_TEST_VARIABLE", "present")
	if got := Env("SYSPROBE_TEST_VARIABLE"); got != "present" {
		t.Errorf("Env() = %q, want present", got)
	}
	if got := Env("SYSPROBE_TEST_VARIABLE_UNSET"); got != "" {
		t.Errorf("Env() = %q, want empty for unset variable", got)
	}
}
