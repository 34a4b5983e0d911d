// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package metric

// Source reads raw counter snapshots from the running kernel. Each
// call is one coherent read of the relevant counter table; the
// [Sampler] calls twice per sample and works on the deltas.
//
// Disk and network reads take the device policy because exclusion has
// to happen during acquisition: /sys/class/net holds non-interface
// entries (bonding_masters, VLAN names) whose statistics files do not
// exist, so reading first and filtering later would fail on hosts
// where the excluded entries are present.
//
// Implementations are safe for concurrent use; they hold no state
// beyond the paths they read.
type Source interface {
	// CPUCounters returns the per-core jiffy counters plus the
	// aggregate row under [DeviceTotal]. If the kernel table has no
	// aggregate row, the implementation synthesizes one by summing the
	// per-core rows.
	CPUCounters() (CPUSnapshot, error)

	// DiskCounters returns the sector counters for every block device
	// not excluded by policy.
	DiskCounters(policy DevicePolicy) (DiskSnapshot, error)

	// NetworkCounters returns the byte counters for every network
	// interface not excluded by policy.
	NetworkCounters(policy DevicePolicy) (NetSnapshot, error)
}
