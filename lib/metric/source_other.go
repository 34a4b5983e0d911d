// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package metric

import (
	"fmt"
	"runtime"
)

// NewSource fails on platforms without a sampling backend. Platform
// support is decided here, once, so individual sampling calls never
// have to.
func NewSource() (Source, error) {
	return nil, fmt.Errorf("no sampling backend for %s: %w", runtime.GOOS, ErrUnsupportedPlatform)
}
