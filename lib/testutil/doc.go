// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for sysprobe packages.
//
// [RequireReceive] encapsulates the select-with-timeout pattern for
// channel reads in tests, so a wedged goroutine fails the test with a
// message instead of hanging the whole run. The sampler tests use it
// to collect results from goroutines blocked on a fake clock.
package testutil
