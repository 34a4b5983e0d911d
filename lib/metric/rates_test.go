// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package metric

import (
	"math"
	"testing"
)

func TestCPUUsagePercent(t *testing.T) {
	tests := []struct {
		name   string
		before CPUCounters
		after  CPUCounters
		want   float64
	}{
		{
			// idle delta 15 of a 75-jiffy window: 60/75 busy.
			name:   "mixed window",
			before: CPUCounters{User: 100, Nice: 0, System: 50, Idle: 800, IOWait: 10},
			after:  CPUCounters{User: 110, Nice: 10, System: 60, Idle: 805, IOWait: 20, IRQ: 10, SoftIRQ: 10, Steal: 10},
			want:   80.0,
		},
		{
			name:   "no movement",
			before: CPUCounters{User: 100, Idle: 800},
			after:  CPUCounters{User: 100, Idle: 800},
			want:   0,
		},
		{
			name:   "fully idle window",
			before: CPUCounters{User: 100, Idle: 800},
			after:  CPUCounters{User: 100, Idle: 900},
			want:   0,
		},
		{
			name:   "fully busy window",
			before: CPUCounters{User: 100, Idle: 800},
			after:  CPUCounters{User: 200, Idle: 800},
			want:   100,
		},
		{
			name:   "iowait counts as idle",
			before: CPUCounters{},
			after:  CPUCounters{User: 50, IOWait: 50},
			want:   50,
		},
		{
			name:   "steal counts as busy",
			before: CPUCounters{Idle: 100},
			after:  CPUCounters{Idle: 150, Steal: 50},
			want:   50,
		},
		{
			// The kernel folds guest jiffies into user and nice, so
			// guest movement on its own must not register.
			name:   "guest alone does not move the window",
			before: CPUCounters{User: 100, Idle: 800},
			after:  CPUCounters{User: 100, Idle: 800, Guest: 500},
			want:   0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := cpuUsagePercent(test.before, test.after)
			if math.Abs(got-test.want) > 1e-9 {
				t.Errorf("cpuUsagePercent() = %v, want %v", got, test.want)
			}
		})
	}
}

func TestDiskDelta(t *testing.T) {
	tests := []struct {
		name   string
		before DiskCounters
		after  DiskCounters
		want   DiskIO
	}{
		{
			// 2048 sectors of 512 bytes is exactly one megabyte.
			name:   "one megabyte read",
			before: DiskCounters{SectorsRead: 1000},
			after:  DiskCounters{SectorsRead: 3048},
			want:   DiskIO{ReadMB: 1.0},
		},
		{
			name:   "half megabyte written",
			before: DiskCounters{SectorsWritten: 500},
			after:  DiskCounters{SectorsWritten: 1524},
			want:   DiskIO{WriteMB: 0.5},
		},
		{
			name:   "no movement",
			before: DiskCounters{SectorsRead: 7, SectorsWritten: 9},
			after:  DiskCounters{SectorsRead: 7, SectorsWritten: 9},
			want:   DiskIO{},
		},
		{
			// Disk figures are not rounded; small deltas survive.
			name:   "sub-hundredth delta unrounded",
			before: DiskCounters{},
			after:  DiskCounters{SectorsRead: 3},
			want:   DiskIO{ReadMB: 1536.0 / 1048576.0},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := diskDelta(test.before, test.after)
			if got != test.want {
				t.Errorf("diskDelta() = %+v, want %+v", got, test.want)
			}
		})
	}
}

func TestNetDelta(t *testing.T) {
	tests := []struct {
		name   string
		before NetCounters
		after  NetCounters
		want   NetIO
	}{
		{
			name:   "exact megabytes",
			before: NetCounters{RxBytes: 1 << 20},
			after:  NetCounters{RxBytes: 5 << 20, TxBytes: 1 << 19},
			want:   NetIO{DownloadMB: 4.0, UploadMB: 0.5},
		},
		{
			// 123456 bytes is 0.1177... MB; rounds up to 0.12.
			name:   "rounded to two decimals",
			before: NetCounters{},
			after:  NetCounters{RxBytes: 123456},
			want:   NetIO{DownloadMB: 0.12},
		},
		{
			// 5000 bytes is under half a hundredth of a megabyte.
			name:   "tiny delta rounds to zero",
			before: NetCounters{TxBytes: 100},
			after:  NetCounters{TxBytes: 5100},
			want:   NetIO{},
		},
		{
			name:   "no movement",
			before: NetCounters{RxBytes: 42, TxBytes: 42},
			after:  NetCounters{RxBytes: 42, TxBytes: 42},
			want:   NetIO{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := netDelta(test.before, test.after)
			if got != test.want {
				t.Errorf("netDelta() = %+v, want %+v", got, test.want)
			}
		})
	}
}
