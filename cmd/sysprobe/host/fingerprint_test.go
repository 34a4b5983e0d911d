// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package host

import (
	"strings"
	"testing"

	"github.com/sysprobe-io/sysprobe/lib/hostinfo"
)

func TestRunFingerprintRejectsPositionalArgs(t *testing.T) {
	err := runFingerprint(&fingerprintParams{}, []string{"stray"})
	if err == nil {
		t.Fatal("runFingerprint() = nil, want error for positional argument")
	}
	if !strings.Contains(err.Error(), "no positional arguments") {
		t.Errorf("error = %q, want 'no positional arguments'", err.Error())
	}
}

func TestFingerprintOutputForms(t *testing.T) {
	fingerprint := hostinfo.Fingerprint{0xab, 0xcd, 0xef, 0x01, 0x23, 0x45}

	output := fingerprintOutput{
		Fingerprint: fingerprint.Hex(),
		ShortRef:    fingerprint.ShortRef(),
	}

	if len(output.Fingerprint) != 64 {
		t.Errorf("Hex() length = %d, want 64", len(output.Fingerprint))
	}
	if output.ShortRef != "host-abcdef012345" {
		t.Errorf("ShortRef() = %q, want %q", output.ShortRef, "host-abcdef012345")
	}
	if !strings.HasPrefix(output.Fingerprint, "abcdef012345") {
		t.Errorf("Hex() = %q, want prefix abcdef012345", output.Fingerprint)
	}
}
