// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package hostinfo answers "what machine am I on, right now". It
// collects one-shot host facts: hostname, kernel and architecture,
// CPU model, memory and swap totals, uptime and load averages,
// distribution identity, and container/hypervisor detection. Unlike
// lib/metric, nothing here is sampled over a window — every field is
// a single read.
//
// [Probe] never returns an error. Missing or unreadable files produce
// zero-valued fields: a minimal container with no DMI, no os-release,
// and no utmp is still a valid host that should report what it can.
// The one exception is [FingerprintHost], which must refuse to
// fabricate an identity when no stable input exists.
//
// On Linux the probe reads /proc, /sys, and /etc directly. Other
// platforms report the portable subset (hostname, OS, CPU count,
// user) and leave kernel-derived fields zero.
package hostinfo
