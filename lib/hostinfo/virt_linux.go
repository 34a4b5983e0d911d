// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package hostinfo

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// detectContainerFrom identifies the container runtime from three
// signals, strongest first: the Docker sentinel file, the init
// process's cgroup memberships, and the Kubernetes service
// environment. Within the cgroup scan, kubepods is checked before the
// runtime names because a pod's cgroup path usually contains both the
// kubepods slice and the backing runtime.
func detectContainerFrom(dockerenvPath, cgroupPath, kubernetesHost string) string {
	if _, err := os.Stat(dockerenvPath); err == nil {
		return "docker"
	}
	if content, err := os.ReadFile(cgroupPath); err == nil {
		cgroups := string(content)
		switch {
		case strings.Contains(cgroups, "kubepods"):
			return "kubernetes"
		case strings.Contains(cgroups, "docker"):
			return "docker"
		case strings.Contains(cgroups, "containerd"):
			return "containerd"
		case strings.Contains(cgroups, "crio"), strings.Contains(cgroups, "cri-o"):
			return "cri-o"
		}
	}
	if kubernetesHost != "" {
		return "kubernetes"
	}
	return ""
}

// hypervisorVocabulary maps DMI substring evidence to hypervisor
// names. Checked in order, first match wins; "microsoft" must follow
// "hyper-v" so both spellings land on the same name.
var hypervisorVocabulary = []struct {
	substring string
	name      string
}{
	{"vmware", "vmware"},
	{"virtualbox", "virtualbox"},
	{"kvm", "kvm"},
	{"qemu", "kvm"},
	{"xen", "xen"},
	{"hyper-v", "hyper-v"},
	{"microsoft", "hyper-v"},
	{"amazon", "amazon-ec2"},
	{"google", "google-compute"},
}

// detectHypervisorFrom identifies the hypervisor from DMI identity
// strings, falling back to the CPUID hypervisor flag that guests
// expose in /proc/cpuinfo even when DMI is silent or unreadable.
// Empty means physical hardware as far as anyone can tell.
func detectHypervisorFrom(procRoot, sysRoot string) string {
	dmiBase := filepath.Join(sysRoot, "class", "dmi", "id")
	evidence := strings.ToLower(strings.Join([]string{
		readTrimmed(filepath.Join(dmiBase, "product_name")),
		readTrimmed(filepath.Join(dmiBase, "sys_vendor")),
		readTrimmed(filepath.Join(dmiBase, "board_vendor")),
	}, " "))

	for _, entry := range hypervisorVocabulary {
		if strings.Contains(evidence, entry.substring) {
			return entry.name
		}
	}

	if cpuinfoHasHypervisorFlag(filepath.Join(procRoot, "cpuinfo")) {
		return "hypervisor"
	}
	return ""
}

// cpuinfoHasHypervisorFlag reports whether any flags line in
// /proc/cpuinfo carries the "hypervisor" CPUID bit.
func cpuinfoHasHypervisorFlag(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "flags") {
			continue
		}
		for _, flag := range strings.Fields(line) {
			if flag == "hypervisor" {
				return true
			}
		}
	}
	return false
}
