// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package metric samples time-varying host metrics: CPU usage, disk
// I/O throughput, and network throughput. These are not single reads —
// each is a two-point sample: read cumulative kernel counters, block
// for a caller-specified number of whole seconds, read again, and
// derive a rate from the delta.
//
// The package is built from four pieces:
//
//   - A [Source] reads raw counter snapshots for one platform. On
//     Linux the counters come from /proc/stat, /proc/diskstats, and
//     /sys/class/net/<iface>/statistics. [NewSource] is the single
//     platform dispatch point; an unsupported platform fails there
//     with [ErrUnsupportedPlatform], never per call.
//   - A [DevicePolicy] excludes pseudo and virtual devices by
//     case-sensitive substring match ([DiskDenylist],
//     [NetworkDenylist]). Policies are plain values passed into the
//     sampling entry points, never ambient state.
//   - A [Sampler] orchestrates the two-point read with an injected
//     clock, so tests drive multi-second windows instantly.
//   - Pure calculators turn two snapshots into percentages and
//     megabyte figures.
//
// Every sampling call is self-contained and blocking: no background
// collection, no shared state, no retained history. Callers wanting a
// five-second window block for five seconds. A duration of zero is
// legal and yields an exact zero delta.
//
// The package never logs. All failures surface as errors wrapping the
// package sentinels so callers can test with errors.Is.
package metric
