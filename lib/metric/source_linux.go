// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package metric

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// NewSource returns the Linux sampling backend, which reads counters
// from /proc and /sys.
func NewSource() (Source, error) {
	return &linuxSource{procRoot: "/proc", sysRoot: "/sys"}, nil
}

// linuxSource reads kernel counters under configurable roots so tests
// can point it at synthetic trees.
type linuxSource struct {
	procRoot string
	sysRoot  string
}

func (s *linuxSource) CPUCounters() (CPUSnapshot, error) {
	return readCPUSnapshot(filepath.Join(s.procRoot, "stat"))
}

func (s *linuxSource) DiskCounters(policy DevicePolicy) (DiskSnapshot, error) {
	return readDiskSnapshot(filepath.Join(s.procRoot, "diskstats"), policy)
}

func (s *linuxSource) NetworkCounters(policy DevicePolicy) (NetSnapshot, error) {
	return readNetSnapshot(filepath.Join(s.sysRoot, "class", "net"), policy)
}

// readCPUSnapshot parses the cpu rows of a /proc/stat table. The
// aggregate "cpu" row becomes the [DeviceTotal] entry; "cpuN" rows
// become entries keyed by core index. If the table has per-core rows
// but no aggregate, the aggregate is synthesized by field-wise
// summation so every snapshot carries [DeviceTotal].
func readCPUSnapshot(path string) (CPUSnapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cpu counters: %w: %w", ErrResourceUnavailable, err)
	}
	defer file.Close()

	snapshot := make(CPUSnapshot)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || !strings.HasPrefix(fields[0], "cpu") {
			continue
		}
		key := DeviceTotal
		if suffix := fields[0][len("cpu"):]; suffix != "" {
			if !allDigits(suffix) {
				continue
			}
			key = suffix
		}
		counters, err := parseCPUFields(fields[1:])
		if err != nil {
			return nil, fmt.Errorf("cpu counters: %w: %s row %q: %w", ErrResourceUnavailable, path, fields[0], err)
		}
		snapshot[key] = counters
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cpu counters: %w: reading %s: %w", ErrResourceUnavailable, path, err)
	}
	if len(snapshot) == 0 {
		return nil, fmt.Errorf("cpu counters: %w: %s has no cpu rows", ErrResourceUnavailable, path)
	}
	if _, ok := snapshot[DeviceTotal]; !ok {
		var total CPUCounters
		for _, counters := range snapshot {
			total = total.add(counters)
		}
		snapshot[DeviceTotal] = total
	}
	return snapshot, nil
}

// parseCPUFields decodes the numeric columns of one cpu row in
// /proc/stat order: user, nice, system, idle, iowait, irq, softirq,
// steal, guest. Kernels before 2.6.24 emit fewer columns; absent
// trailing columns are zero. Columns beyond guest (guest_nice and
// later) are ignored.
func parseCPUFields(fields []string) (CPUCounters, error) {
	var values [9]uint64
	for i := range values {
		if i >= len(fields) {
			break
		}
		value, err := strconv.ParseUint(fields[i], 10, 64)
		if err != nil {
			return CPUCounters{}, err
		}
		values[i] = value
	}
	return CPUCounters{
		User:    values[0],
		Nice:    values[1],
		System:  values[2],
		Idle:    values[3],
		IOWait:  values[4],
		IRQ:     values[5],
		SoftIRQ: values[6],
		Steal:   values[7],
		Guest:   values[8],
	}, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// readDiskSnapshot parses a /proc/diskstats table. Per row: the third
// field is the device name, the sixth is cumulative sectors read, the
// tenth is cumulative sectors written. Devices excluded by policy are
// skipped before their counter fields are validated.
func readDiskSnapshot(path string, policy DevicePolicy) (DiskSnapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("disk counters: %w: %w", ErrResourceUnavailable, err)
	}
	defer file.Close()

	snapshot := make(DiskSnapshot)
	sawRow := false
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		sawRow = true
		if len(fields) < 3 {
			return nil, fmt.Errorf("disk counters: %w: %s row %q has no device name", ErrResourceUnavailable, path, scanner.Text())
		}
		device := fields[2]
		if policy.Excluded(device) {
			continue
		}
		if len(fields) < 10 {
			return nil, fmt.Errorf("disk counters: %w: %s device %q has %d fields, want at least 10", ErrResourceUnavailable, path, device, len(fields))
		}
		sectorsRead, err := strconv.ParseUint(fields[5], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("disk counters: %w: %s device %q sectors read: %w", ErrResourceUnavailable, path, device, err)
		}
		sectorsWritten, err := strconv.ParseUint(fields[9], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("disk counters: %w: %s device %q sectors written: %w", ErrResourceUnavailable, path, device, err)
		}
		snapshot[device] = DiskCounters{SectorsRead: sectorsRead, SectorsWritten: sectorsWritten}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("disk counters: %w: reading %s: %w", ErrResourceUnavailable, path, err)
	}
	if !sawRow {
		return nil, fmt.Errorf("disk counters: %w: %s is empty", ErrResourceUnavailable, path)
	}
	return snapshot, nil
}

// readNetSnapshot reads the per-interface byte counters under a
// /sys/class/net tree. Exclusion happens on the directory entry name,
// before any statistics file is opened: the class directory holds
// non-interface entries (bonding_masters) with no statistics beneath
// them, and the default policy is what keeps reads away from those.
func readNetSnapshot(root string, policy DevicePolicy) (NetSnapshot, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("network counters: %w: %w", ErrResourceUnavailable, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("network counters: %w: %s has no entries", ErrResourceUnavailable, root)
	}
	snapshot := make(NetSnapshot)
	for _, entry := range entries {
		name := entry.Name()
		if policy.Excluded(name) {
			continue
		}
		statistics := filepath.Join(root, name, "statistics")
		rx, err := readCounterFile(filepath.Join(statistics, "rx_bytes"))
		if err != nil {
			return nil, fmt.Errorf("network counters: %w: interface %s: %w", ErrResourceUnavailable, name, err)
		}
		tx, err := readCounterFile(filepath.Join(statistics, "tx_bytes"))
		if err != nil {
			return nil, fmt.Errorf("network counters: %w: interface %s: %w", ErrResourceUnavailable, name, err)
		}
		snapshot[name] = NetCounters{RxBytes: rx, TxBytes: tx}
	}
	return snapshot, nil
}

// readCounterFile reads a single-value sysfs counter file: one decimal
// number and a trailing newline.
func readCounterFile(path string) (uint64, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseUint(strings.TrimSpace(string(content)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return value, nil
}
