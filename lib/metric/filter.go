// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package metric

import "strings"

// DevicePolicy is a denylist of case-sensitive substrings. A device
// whose name contains any entry is excluded from sampling. An empty or
// nil policy excludes nothing.
//
// Policies are passed explicitly into each sampling call. Callers
// compose their own by appending to a copy of the package defaults.
type DevicePolicy []string

// Excluded reports whether device matches any denylist entry.
func (p DevicePolicy) Excluded(device string) bool {
	for _, pattern := range p {
		if strings.Contains(device, pattern) {
			return true
		}
	}
	return false
}

var (
	// DiskDenylist excludes loopback and ramdisk pseudo-devices, which
	// inflate totals without representing physical I/O.
	DiskDenylist = DevicePolicy{"loop", "ram"}

	// NetworkDenylist excludes virtual and administrative entries from
	// /sys/class/net: container veth pairs, docker bridges, the
	// loopback interface, tunnels, VirtualBox host adapters, VLAN
	// sub-interfaces (any dotted name), and the bonding_masters control
	// file that shares the directory with real interfaces.
	NetworkDenylist = DevicePolicy{"veth", "docker", "lo", "tun", "vboxnet", ".", "bonding_masters"}
)
