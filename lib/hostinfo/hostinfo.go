// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package hostinfo

import (
	"os"
	"strings"

	"github.com/sysprobe-io/sysprobe/lib/arch"
)

// Info is the one-shot host inventory. Zero values mean "not
// determinable on this host", never an error.
type Info struct {
	Hostname string `json:"hostname"`
	// OS is the runtime operating system name ("linux", "darwin", ...).
	OS string `json:"os"`
	// KernelVersion is the uname release string, e.g. "6.8.0-45-generic".
	KernelVersion string `json:"kernel_version,omitempty"`
	// Machine is the raw uname machine string, e.g. "x86_64" or "aarch64".
	Machine string `json:"machine,omitempty"`
	// Architecture is the classified family of Machine. Empty when the
	// raw string matches no known family; an exotic machine string
	// must not fail the whole probe.
	Architecture arch.Architecture `json:"architecture,omitempty"`

	CPUModel string `json:"cpu_model,omitempty"`
	// CPUCount is the number of logical CPUs usable by this process.
	CPUCount int `json:"cpu_count"`

	MemoryTotalMB int `json:"memory_total_mb"`
	MemoryFreeMB  int `json:"memory_free_mb"`
	SwapTotalMB   int `json:"swap_total_mb"`
	SwapFreeMB    int `json:"swap_free_mb"`

	UptimeSeconds int64   `json:"uptime_seconds"`
	Load1         float64 `json:"load1"`
	Load5         float64 `json:"load5"`
	Load15        float64 `json:"load15"`

	Username string `json:"username,omitempty"`
	// Root reports whether the probing process runs with effective
	// UID 0.
	Root bool `json:"root"`

	Distro         Distro         `json:"distro"`
	Virtualization Virtualization `json:"virtualization"`
}

// Distro identifies a Linux distribution from os-release(5). All
// fields are zero on non-Linux hosts and on systems without an
// os-release file.
type Distro struct {
	// ID is the lowercase machine identifier, e.g. "debian", "fedora".
	ID string `json:"id,omitempty"`
	// Name is the human name without version, e.g. "Debian GNU/Linux".
	Name string `json:"name,omitempty"`
	// VersionID is the bare version, e.g. "12" or "24.04".
	VersionID string `json:"version_id,omitempty"`
	// PrettyName is the full display string, e.g.
	// "Debian GNU/Linux 12 (bookworm)".
	PrettyName string `json:"pretty_name,omitempty"`
}

// Virtualization describes what the host is running inside of. Both
// fields are empty on bare metal.
type Virtualization struct {
	// Container is the detected container runtime: "docker",
	// "containerd", "cri-o", or "kubernetes". Empty when not
	// containerized.
	Container string `json:"container,omitempty"`
	// Hypervisor is the detected hypervisor or cloud platform:
	// "vmware", "virtualbox", "kvm", "xen", "hyper-v", "amazon-ec2",
	// "google-compute", or the generic "hypervisor" when only the
	// CPUID flag gives it away. Empty on physical hardware.
	Hypervisor string `json:"hypervisor,omitempty"`
}

// Env returns the value of the named environment variable, empty when
// unset. Callers using this package as their single host accessor do
// not need to import os for one lookup.
func Env(key string) string {
	return os.Getenv(key)
}

// readTrimmed reads a single-line file and returns its trimmed
// content, empty on any error.
func readTrimmed(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
