// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package arch classifies raw machine architecture strings (as reported
// by uname -m, the GOARCH environment, or container image metadata)
// into a small closed set of families. Classification is substring
// matching in a fixed order; a string no family matches is an error,
// never a default.
package arch

import (
	"errors"
	"fmt"
	"strings"
)

// Architecture is a known machine architecture family.
type Architecture string

const (
	// X86 covers 64-bit and 32-bit Intel/AMD: x86_64, amd64, i386, i686.
	X86 Architecture = "x86"

	// PPC covers PowerPC variants: ppc64, ppc64le, power9.
	PPC Architecture = "ppc"

	// ARM64 covers 64-bit ARM: arm64, aarch64.
	ARM64 Architecture = "arm64"

	// ARMV7 covers 32-bit ARMv7: armv7l, armv7hl.
	ARMV7 Architecture = "armv7"

	// ARMV8 covers ARMv8 cores running in 32-bit mode: armv8l.
	ARMV8 Architecture = "armv8"
)

// All lists every known architecture in classification order. Classify
// tries each member's patterns in this order and returns the first
// match, so overlapping vocabularies (a raw string containing both
// "x86" and another pattern) resolve deterministically.
var All = []Architecture{X86, PPC, ARM64, ARMV7, ARMV8}

// ErrUnknownArchitecture is returned when a raw architecture string
// matches no known family.
var ErrUnknownArchitecture = errors.New("unknown architecture")

// patterns returns the substrings that identify this architecture in a
// raw machine string.
func (a Architecture) patterns() []string {
	switch a {
	case X86:
		return []string{"x86", "amd64", "i386", "i686"}
	case PPC:
		return []string{"ppc", "power"}
	case ARM64:
		return []string{"aarch64", "arm64"}
	case ARMV7:
		return []string{"armv7"}
	case ARMV8:
		return []string{"armv8"}
	}
	return nil
}

// Matches reports whether the raw architecture string belongs to this
// family. Matching is case-sensitive substring containment — raw
// strings from uname are lowercase already.
func (a Architecture) Matches(raw string) bool {
	for _, pattern := range a.patterns() {
		if strings.Contains(raw, pattern) {
			return true
		}
	}
	return false
}

// IsKnown reports whether a is one of the defined Architecture values.
func (a Architecture) IsKnown() bool {
	for _, known := range All {
		if a == known {
			return true
		}
	}
	return false
}

// String returns the family name.
func (a Architecture) String() string { return string(a) }

// Classify maps a raw architecture string to its family. Families are
// tried in the order of All; the first match wins. A string matching
// no family fails with ErrUnknownArchitecture.
func Classify(raw string) (Architecture, error) {
	for _, candidate := range All {
		if candidate.Matches(raw) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("classifying %q: %w", raw, ErrUnknownArchitecture)
}

// Parse maps an architecture family name (e.g. "arm64") to its
// Architecture value. Unlike Classify, this is an exact name lookup,
// not pattern matching over a raw machine string.
func Parse(name string) (Architecture, error) {
	candidate := Architecture(name)
	if !candidate.IsKnown() {
		return "", fmt.Errorf("parsing architecture name %q: %w", name, ErrUnknownArchitecture)
	}
	return candidate, nil
}

// Is reports whether the raw architecture string belongs to the family
// with the given name. It fails if name is not a known family name.
func Is(name, raw string) (bool, error) {
	family, err := Parse(name)
	if err != nil {
		return false, err
	}
	return family.Matches(raw), nil
}

// IsX86 reports whether raw is an x86-family architecture string.
func IsX86(raw string) bool { return X86.Matches(raw) }

// IsPPC reports whether raw is a PowerPC-family architecture string.
func IsPPC(raw string) bool { return PPC.Matches(raw) }

// IsARM64 reports whether raw is a 64-bit ARM architecture string.
func IsARM64(raw string) bool { return ARM64.Matches(raw) }

// IsARMV7 reports whether raw is an ARMv7 architecture string.
func IsARMV7(raw string) bool { return ARMV7.Matches(raw) }

// IsARMV8 reports whether raw is an ARMv8 architecture string.
func IsARMV8(raw string) bool { return ARMV8.Matches(raw) }
