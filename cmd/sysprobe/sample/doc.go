// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package sample implements the counter-sampling commands: cpu, disk,
// and net. Each takes two kernel counter snapshots separated by a
// blocking sleep and reports the delta as usage over that window.
//
// Device exclusion for disk and net is layered from four sources, in
// order: the built-in denylists, the filter section of the
// configuration file, an optional JSONC policy file, and --exclude
// flags. Later layers extend the exclusion list, never replace it.
//
// The policy assembly and config plumbing (DiskPolicy, NetworkPolicy,
// LoadConfig, FlagsWithConfig) and the table renderers (PrintCPU,
// PrintDisk, PrintNetwork) are exported for the snapshot and report
// commands, which run the same sampling pass.
package sample
