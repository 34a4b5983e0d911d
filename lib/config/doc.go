// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for sysprobe.
//
// Configuration is loaded from a single file specified by either the
// SYSPROBE_CONFIG environment variable (via [Load]) or a --config
// flag (via [LoadFile]). There is no ~/.config discovery and no
// automatic file search; an unset SYSPROBE_CONFIG simply yields the
// defaults, because a probe must run on a bare host with zero
// configuration in place.
//
// The file carries only the handful of knobs a probe has: the
// sampling window length, extra device-filter patterns (merged with
// the built-in denylists, never replacing them), an optional device
// policy file path, and the default snapshot output layers.
// Command-line flags always override loaded values.
//
// Variable expansion is performed on path fields after loading:
// ${VAR} and ${VAR:-default} patterns are expanded from the
// environment. No other environment variables override config values.
package config
