// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package metric

import "math"

const (
	// sectorSize is the fixed unit of /proc/diskstats sector counts,
	// independent of the device's native sector size.
	sectorSize = 512

	// bytesPerMB converts byte counts to megabytes (2^20).
	bytesPerMB = 1 << 20
)

// cpuUsagePercent derives a usage percentage from two jiffy counter
// rows taken at the ends of a sampling window.
//
// Idle time is idle plus iowait: a CPU waiting on I/O is not doing
// work. Non-idle time is user, nice, system, irq, softirq, and steal.
// Guest time is excluded because the kernel already folds it into user
// and nice. Usage is the non-idle share of total elapsed jiffies,
// scaled to a percentage.
//
// A zero-width window (identical counters, or a zero-second sample on
// an idle machine) yields exactly 0. Counters are cumulative and
// assumed monotonic; a counter reset between snapshots produces an
// unspecified result.
func cpuUsagePercent(before, after CPUCounters) float64 {
	idleBefore := before.Idle + before.IOWait
	idleAfter := after.Idle + after.IOWait
	nonIdleBefore := before.User + before.Nice + before.System + before.IRQ + before.SoftIRQ + before.Steal
	nonIdleAfter := after.User + after.Nice + after.System + after.IRQ + after.SoftIRQ + after.Steal

	totalDelta := (idleAfter + nonIdleAfter) - (idleBefore + nonIdleBefore)
	if totalDelta == 0 {
		return 0
	}
	idleDelta := idleAfter - idleBefore
	return float64(totalDelta-idleDelta) / float64(totalDelta) * 100
}

// diskDelta converts the sector counter movement over a window into
// megabytes moved, unrounded.
func diskDelta(before, after DiskCounters) DiskIO {
	return DiskIO{
		ReadMB:  sectorsToMB(after.SectorsRead - before.SectorsRead),
		WriteMB: sectorsToMB(after.SectorsWritten - before.SectorsWritten),
	}
}

// netDelta converts the byte counter movement over a window into
// megabytes moved, rounded to two decimal places per direction. The
// rounding happens here, per device, so aggregate totals sum the same
// figures callers see.
func netDelta(before, after NetCounters) NetIO {
	return NetIO{
		DownloadMB: round2(float64(after.RxBytes-before.RxBytes) / bytesPerMB),
		UploadMB:   round2(float64(after.TxBytes-before.TxBytes) / bytesPerMB),
	}
}

func sectorsToMB(sectors uint64) float64 {
	return float64(sectors) * sectorSize / bytesPerMB
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
