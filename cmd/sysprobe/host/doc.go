// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package host implements the point-in-time inventory commands: info,
// arch, and fingerprint. None of them sample over a window; each
// reads the host's current state and exits.
//
// The inventory renderers (PrintInfo, DistroLabel, FormatUptime) are
// exported for the show and report commands, which display the same
// facts from a stored snapshot or alongside sampled usage.
package host
