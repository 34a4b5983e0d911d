// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package report implements the report command: a one-shot styled
// summary of the host for a human glancing at a terminal. It runs the
// same sampling pass as snapshot and renders gauges instead of
// tables; everything machine-readable lives in the other commands.
package report
