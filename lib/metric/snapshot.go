// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package metric

// DeviceTotal is the reserved map key for the host-wide aggregate in
// every per-device result. It is always present: as the kernel's own
// aggregate row for CPU, or as the sum over surviving devices for disk
// and network. Real devices never use this name.
const DeviceTotal = "total"

// CPUCounters holds one row of cumulative jiffy counters from
// /proc/stat. Kernels older than 2.6.24 omit trailing fields; absent
// fields are zero, which drops out of every delta.
//
// Guest is retained for completeness but excluded from usage
// calculation: the kernel already accounts guest time inside User and
// Nice, so adding it would double-count.
type CPUCounters struct {
	User    uint64
	Nice    uint64
	System  uint64
	Idle    uint64
	IOWait  uint64
	IRQ     uint64
	SoftIRQ uint64
	Steal   uint64
	Guest   uint64
}

// add returns the field-wise sum of two counter rows. Used to
// synthesize the aggregate row when /proc/stat lacks one.
func (c CPUCounters) add(other CPUCounters) CPUCounters {
	return CPUCounters{
		User:    c.User + other.User,
		Nice:    c.Nice + other.Nice,
		System:  c.System + other.System,
		Idle:    c.Idle + other.Idle,
		IOWait:  c.IOWait + other.IOWait,
		IRQ:     c.IRQ + other.IRQ,
		SoftIRQ: c.SoftIRQ + other.SoftIRQ,
		Steal:   c.Steal + other.Steal,
		Guest:   c.Guest + other.Guest,
	}
}

// CPUSnapshot maps a CPU key to its counter row at one instant. Keys
// are core indices ("0", "1", ...) plus [DeviceTotal] for the
// aggregate row, which every snapshot carries.
type CPUSnapshot map[string]CPUCounters

// DiskCounters holds the cumulative sector counters for one block
// device from /proc/diskstats. A sector is 512 bytes regardless of the
// device's native sector size; that is the /proc/diskstats unit.
type DiskCounters struct {
	SectorsRead    uint64
	SectorsWritten uint64
}

// DiskSnapshot maps a block device name to its counters at one
// instant.
type DiskSnapshot map[string]DiskCounters

// NetCounters holds the cumulative byte counters for one network
// interface from /sys/class/net/<iface>/statistics.
type NetCounters struct {
	RxBytes uint64
	TxBytes uint64
}

// NetSnapshot maps an interface name to its counters at one instant.
type NetSnapshot map[string]NetCounters

// CPUUsage maps a CPU key to its usage percentage over the sampling
// window, in [0, 100]. The [DeviceTotal] entry is the host-wide
// figure.
type CPUUsage map[string]float64

// Total returns the host-wide usage percentage.
func (u CPUUsage) Total() float64 { return u[DeviceTotal] }

// DiskIO is the data moved by one block device over the sampling
// window, in megabytes (1 MB = 1,048,576 bytes).
type DiskIO struct {
	ReadMB  float64 `json:"read_mb"`
	WriteMB float64 `json:"write_mb"`
}

// DiskUsage maps a block device name to its throughput over the
// sampling window. The [DeviceTotal] entry sums all listed devices.
type DiskUsage map[string]DiskIO

// Total returns the summed throughput across all listed devices.
func (u DiskUsage) Total() DiskIO { return u[DeviceTotal] }

// NetIO is the data moved by one network interface over the sampling
// window, in megabytes rounded to two decimal places.
type NetIO struct {
	DownloadMB float64 `json:"download_mb"`
	UploadMB   float64 `json:"upload_mb"`
}

// NetworkUsage maps an interface name to its throughput over the
// sampling window. The [DeviceTotal] entry sums the per-interface
// figures as rounded, so it is consistent with what callers see for
// individual interfaces.
type NetworkUsage map[string]NetIO

// Total returns the summed throughput across all listed interfaces.
func (u NetworkUsage) Total() NetIO { return u[DeviceTotal] }
