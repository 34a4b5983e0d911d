// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package metric

import "errors"

var (
	// ErrResourceUnavailable indicates that a kernel counter resource
	// (a /proc table or a /sys statistics file) could not be read or
	// held no usable content. Sampling cannot proceed without both
	// snapshots, so the call fails rather than returning partial data.
	ErrResourceUnavailable = errors.New("counter resource unavailable")

	// ErrUnsupportedPlatform indicates that no sampling backend exists
	// for the current operating system. It is returned by [NewSource]
	// at construction, so a caller learns about platform support once,
	// not on every sampling call.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)
