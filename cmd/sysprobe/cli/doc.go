// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework for the sysprobe binary:
// a [Command] tree with pflag flag sets, struct-tag flag binding,
// help output, and did-you-mean suggestions for mistyped commands and
// flags.
//
// Leaf commands declare their flags in a params struct with flag/desc/
// default tags and bind them with [FlagsFromParams]. Embedding
// [JSONOutput] in a params struct gives a command the --json flag and
// the EmitJSON helper. Commands whose non-zero exit is an answer
// rather than a failure return [ExitError] so main exits silently
// with that code.
package cli
