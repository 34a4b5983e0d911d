// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package metric

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

const procStat = `cpu  100 200 300 4000 50 60 70 80 90 5
cpu0 50 100 150 2000 25 30 35 40 45 2
cpu1 50 100 150 2000 25 30 35 40 45 3
intr 123456 0 0 0
ctxt 987654
btime 1700000000
processes 4242
procs_running 1
procs_blocked 0
`

func TestReadCPUSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stat")
	writeFile(t, path, procStat)

	snapshot, err := readCPUSnapshot(path)
	if err != nil {
		t.Fatalf("readCPUSnapshot() error: %v", err)
	}
	want := CPUSnapshot{
		DeviceTotal: {User: 100, Nice: 200, System: 300, Idle: 4000, IOWait: 50, IRQ: 60, SoftIRQ: 70, Steal: 80, Guest: 90},
		"0":         {User: 50, Nice: 100, System: 150, Idle: 2000, IOWait: 25, IRQ: 30, SoftIRQ: 35, Steal: 40, Guest: 45},
		"1":         {User: 50, Nice: 100, System: 150, Idle: 2000, IOWait: 25, IRQ: 30, SoftIRQ: 35, Steal: 40, Guest: 45},
	}
	if !reflect.DeepEqual(snapshot, want) {
		t.Errorf("readCPUSnapshot() = %+v, want %+v", snapshot, want)
	}
}

func TestReadCPUSnapshotIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stat")
	writeFile(t, path, procStat)

	first, err := readCPUSnapshot(path)
	if err != nil {
		t.Fatalf("first read error: %v", err)
	}
	second, err := readCPUSnapshot(path)
	if err != nil {
		t.Fatalf("second read error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated reads differ: %+v vs %+v", first, second)
	}
}

func TestReadCPUSnapshotSynthesizesTotal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stat")
	writeFile(t, path, "cpu0 10 20 30 40 50 60 70 80 90\ncpu1 1 2 3 4 5 6 7 8 9\n")

	snapshot, err := readCPUSnapshot(path)
	if err != nil {
		t.Fatalf("readCPUSnapshot() error: %v", err)
	}
	want := CPUCounters{User: 11, Nice: 22, System: 33, Idle: 44, IOWait: 55, IRQ: 66, SoftIRQ: 77, Steal: 88, Guest: 99}
	if got := snapshot[DeviceTotal]; got != want {
		t.Errorf("synthesized total = %+v, want %+v", got, want)
	}
}

func TestReadCPUSnapshotShortRow(t *testing.T) {
	// Kernels before 2.6.24 emit only the first columns; the absent
	// trailing counters read as zero.
	path := filepath.Join(t.TempDir(), "stat")
	writeFile(t, path, "cpu 100 200 300 400\n")

	snapshot, err := readCPUSnapshot(path)
	if err != nil {
		t.Fatalf("readCPUSnapshot() error: %v", err)
	}
	want := CPUCounters{User: 100, Nice: 200, System: 300, Idle: 400}
	if got := snapshot[DeviceTotal]; got != want {
		t.Errorf("total = %+v, want %+v", got, want)
	}
}

func TestReadCPUSnapshotSkipsNonNumericSuffix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stat")
	writeFile(t, path, "cpu 1 2 3 4\ncpufreq bogus row\ncpu0 1 2 3 4\n")

	snapshot, err := readCPUSnapshot(path)
	if err != nil {
		t.Fatalf("readCPUSnapshot() error: %v", err)
	}
	if len(snapshot) != 2 {
		t.Errorf("snapshot has keys %v, want total and 0 only", keys(snapshot))
	}
}

func TestReadCPUSnapshotErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string // empty string with present=false means no file
		present bool
	}{
		{"missing file", "", false},
		{"empty file", "", true},
		{"no cpu rows", "ctxt 987654\nbtime 1700000000\n", true},
		{"malformed counter", "cpu 100 bogus 300 400\n", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "stat")
			if test.present {
				writeFile(t, path, test.content)
			}
			_, err := readCPUSnapshot(path)
			if err == nil {
				t.Fatal("readCPUSnapshot() succeeded, want error")
			}
			if !errors.Is(err, ErrResourceUnavailable) {
				t.Errorf("error %v does not wrap ErrResourceUnavailable", err)
			}
		})
	}
}

const procDiskstats = `   8       0 sda 15000 100 512000 3000 8000 200 256000 2000 0 4000 5000
   8       1 sda1 14000 90 500000 2900 7900 190 250000 1900 0 3900 4900
   7       0 loop0 50 0 400 20 0 0 0 0 0 10 20
   1       0 ram0 10 0 80 5 0 0 0 0 0 2 5
 259       0 nvme0n1 999 1 2048 10 111 2 4096 20 0 30 30
`

func TestReadDiskSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diskstats")
	writeFile(t, path, procDiskstats)

	snapshot, err := readDiskSnapshot(path, DiskDenylist)
	if err != nil {
		t.Fatalf("readDiskSnapshot() error: %v", err)
	}
	want := DiskSnapshot{
		"sda":     {SectorsRead: 512000, SectorsWritten: 256000},
		"sda1":    {SectorsRead: 500000, SectorsWritten: 250000},
		"nvme0n1": {SectorsRead: 2048, SectorsWritten: 4096},
	}
	if !reflect.DeepEqual(snapshot, want) {
		t.Errorf("readDiskSnapshot() = %+v, want %+v", snapshot, want)
	}
}

func TestReadDiskSnapshotNilPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diskstats")
	writeFile(t, path, procDiskstats)

	snapshot, err := readDiskSnapshot(path, nil)
	if err != nil {
		t.Fatalf("readDiskSnapshot() error: %v", err)
	}
	if len(snapshot) != 5 {
		t.Errorf("nil policy kept %d devices, want all 5: %v", len(snapshot), keys(snapshot))
	}
}

func TestReadDiskSnapshotExcludedRowNotValidated(t *testing.T) {
	// A truncated row for an excluded device is skipped, not an error.
	// The same truncation on an included device fails the read.
	path := filepath.Join(t.TempDir(), "diskstats")
	writeFile(t, path, "7 0 loop0 50\n8 0 sda 15000 100 512000 3000 8000 200 256000 2000 0 4000 5000\n")

	snapshot, err := readDiskSnapshot(path, DiskDenylist)
	if err != nil {
		t.Fatalf("readDiskSnapshot() error: %v", err)
	}
	if _, ok := snapshot["sda"]; !ok || len(snapshot) != 1 {
		t.Errorf("readDiskSnapshot() = %+v, want sda only", snapshot)
	}
}

func TestReadDiskSnapshotErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		present bool
	}{
		{"missing file", "", false},
		{"empty file", "", true},
		{"row without device name", "8 0\n", true},
		{"truncated row", "8 0 sda 15000 100 512000\n", true},
		{"malformed sectors read", "8 0 sda 15000 100 bogus 3000 8000 200 256000 2000 0 4000 5000\n", true},
		{"malformed sectors written", "8 0 sda 15000 100 512000 3000 8000 200 bogus 2000 0 4000 5000\n", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "diskstats")
			if test.present {
				writeFile(t, path, test.content)
			}
			_, err := readDiskSnapshot(path, DiskDenylist)
			if err == nil {
				t.Fatal("readDiskSnapshot() succeeded, want error")
			}
			if !errors.Is(err, ErrResourceUnavailable) {
				t.Errorf("error %v does not wrap ErrResourceUnavailable", err)
			}
		})
	}
}

// writeInterface lays out /sys/class/net/<name>/statistics with the
// two byte counter files.
func writeInterface(t *testing.T, root, name, rx, tx string) {
	t.Helper()
	statistics := filepath.Join(root, name, "statistics")
	writeFile(t, filepath.Join(statistics, "rx_bytes"), rx)
	writeFile(t, filepath.Join(statistics, "tx_bytes"), tx)
}

func TestReadNetSnapshot(t *testing.T) {
	root := t.TempDir()
	writeInterface(t, root, "eth0", "1048576\n", "524288\n")
	writeInterface(t, root, "wlan0", "2097152\n", "0\n")
	writeInterface(t, root, "lo", "999999\n", "999999\n")
	// docker0 has no statistics directory at all; the policy keeps the
	// reader away from it. bonding_masters is a plain file.
	if err := os.MkdirAll(filepath.Join(root, "docker0"), 0o755); err != nil {
		t.Fatalf("creating docker0: %v", err)
	}
	writeFile(t, filepath.Join(root, "bonding_masters"), "bond0\n")

	snapshot, err := readNetSnapshot(root, NetworkDenylist)
	if err != nil {
		t.Fatalf("readNetSnapshot() error: %v", err)
	}
	want := NetSnapshot{
		"eth0":  {RxBytes: 1048576, TxBytes: 524288},
		"wlan0": {RxBytes: 2097152, TxBytes: 0},
	}
	if !reflect.DeepEqual(snapshot, want) {
		t.Errorf("readNetSnapshot() = %+v, want %+v", snapshot, want)
	}
}

func TestReadNetSnapshotErrors(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		_, err := readNetSnapshot(filepath.Join(t.TempDir(), "absent"), nil)
		if !errors.Is(err, ErrResourceUnavailable) {
			t.Errorf("error %v does not wrap ErrResourceUnavailable", err)
		}
	})

	t.Run("empty root", func(t *testing.T) {
		_, err := readNetSnapshot(t.TempDir(), nil)
		if !errors.Is(err, ErrResourceUnavailable) {
			t.Errorf("error %v does not wrap ErrResourceUnavailable", err)
		}
	})

	t.Run("interface missing counters", func(t *testing.T) {
		root := t.TempDir()
		if err := os.MkdirAll(filepath.Join(root, "eth0", "statistics"), 0o755); err != nil {
			t.Fatalf("creating tree: %v", err)
		}
		_, err := readNetSnapshot(root, nil)
		if !errors.Is(err, ErrResourceUnavailable) {
			t.Errorf("error %v does not wrap ErrResourceUnavailable", err)
		}
	})

	t.Run("malformed counter value", func(t *testing.T) {
		root := t.TempDir()
		writeInterface(t, root, "eth0", "not-a-number\n", "0\n")
		_, err := readNetSnapshot(root, nil)
		if !errors.Is(err, ErrResourceUnavailable) {
			t.Errorf("error %v does not wrap ErrResourceUnavailable", err)
		}
	})
}

func TestLinuxSourceLive(t *testing.T) {
	source, err := NewSource()
	if err != nil {
		t.Fatalf("NewSource() error: %v", err)
	}

	cpu, err := source.CPUCounters()
	if err != nil {
		t.Fatalf("CPUCounters() error: %v", err)
	}
	if _, ok := cpu[DeviceTotal]; !ok {
		t.Errorf("live cpu snapshot has keys %v, missing %q", keys(cpu), DeviceTotal)
	}

	if _, err := source.DiskCounters(DiskDenylist); err != nil {
		t.Errorf("DiskCounters() error: %v", err)
	}
	if _, err := source.NetworkCounters(NetworkDenylist); err != nil {
		t.Errorf("NetworkCounters() error: %v", err)
	}
}
