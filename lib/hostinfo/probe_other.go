// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package hostinfo

import (
	"os"
	"os/user"
	"runtime"

	"github.com/sysprobe-io/sysprobe/lib/arch"
)

// Probe collects the portable subset of the host inventory. Kernel
// counters, distro identity, and virtualization detection are Linux
// constructs; their fields stay zero here.
func Probe() Info {
	info := Info{OS: runtime.GOOS, CPUCount: runtime.NumCPU()}

	info.Hostname, _ = os.Hostname()
	if family, err := arch.Classify(runtime.GOARCH); err == nil {
		info.Architecture = family
	}
	if current, err := user.Current(); err == nil {
		info.Username = current.Username
	}
	info.Root = os.Geteuid() == 0

	return info
}
