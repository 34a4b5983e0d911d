// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package hostinfo

import (
	"bufio"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/sysprobe-io/sysprobe/lib/arch"
)

// Probe collects the full host inventory.
func Probe() Info {
	return probeFrom("/proc", "/sys", "/etc")
}

// probeFrom is the testable implementation of Probe. It accepts root
// paths for /proc, /sys, and /etc so tests can point at synthetic
// trees. Syscall-derived fields (uname, sysinfo, hostname, user) are
// always live.
func probeFrom(procRoot, sysRoot, etcRoot string) Info {
	info := Info{OS: runtime.GOOS, CPUCount: runtime.NumCPU()}

	info.Hostname, _ = os.Hostname()

	var uts unix.Utsname
	if err := unix.Uname(&uts); err == nil {
		info.KernelVersion = unix.ByteSliceToString(uts.Release[:])
		info.Machine = unix.ByteSliceToString(uts.Machine[:])
		if family, err := arch.Classify(info.Machine); err == nil {
			info.Architecture = family
		}
	}

	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err == nil {
		unit := uint64(si.Unit)
		info.MemoryTotalMB = int(uint64(si.Totalram) * unit / (1024 * 1024))
		info.MemoryFreeMB = int(uint64(si.Freeram) * unit / (1024 * 1024))
		info.SwapTotalMB = int(uint64(si.Totalswap) * unit / (1024 * 1024))
		info.SwapFreeMB = int(uint64(si.Freeswap) * unit / (1024 * 1024))
		info.UptimeSeconds = int64(si.Uptime)
		// The kernel reports load averages in fixed point, scaled by
		// 2^16.
		const loadScale = 65536
		info.Load1 = float64(si.Loads[0]) / loadScale
		info.Load5 = float64(si.Loads[1]) / loadScale
		info.Load15 = float64(si.Loads[2]) / loadScale
	}

	info.CPUModel = readCPUModel(filepath.Join(procRoot, "cpuinfo"))

	if current, err := user.Current(); err == nil {
		info.Username = current.Username
	}
	info.Root = os.Geteuid() == 0

	// The os-release fallback location lives beside etc in the
	// filesystem root, so it stays reachable from an injected etcRoot.
	info.Distro = readDistro(
		filepath.Join(etcRoot, "os-release"),
		filepath.Join(etcRoot, "..", "usr", "lib", "os-release"),
	)

	info.Virtualization = Virtualization{
		Container: detectContainerFrom(
			"/.dockerenv",
			filepath.Join(procRoot, "1", "cgroup"),
			os.Getenv("KUBERNETES_SERVICE_HOST"),
		),
		Hypervisor: detectHypervisorFrom(procRoot, sysRoot),
	}

	return info
}

// readCPUModel extracts the first "model name" value from
// /proc/cpuinfo.
func readCPUModel(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "model name") {
			parts := strings.SplitN(line, ":", 2)
			if len(parts) == 2 {
				return strings.TrimSpace(parts[1])
			}
		}
	}
	return ""
}
