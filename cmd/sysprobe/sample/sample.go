// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package sample

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/sysprobe-io/sysprobe/cmd/sysprobe/cli"
	"github.com/sysprobe-io/sysprobe/lib/config"
	"github.com/sysprobe-io/sysprobe/lib/metric"
	"github.com/sysprobe-io/sysprobe/lib/policyfile"
)

// FlagsWithConfig builds a command's flag set from its params struct,
// then re-seeds the bound fields from the configuration file. Flag
// parsing runs after this, and parsed flags overwrite the seeded
// values, so the precedence is: flag > config file > built-in
// default.
//
// Config load errors are ignored here; Run loads the config again and
// surfaces the error where it can be returned.
func FlagsWithConfig(name string, params any, seed func(*config.Config)) *pflag.FlagSet {
	flagSet := cli.FlagsFromParams(name, params)
	if cfg, err := config.Load(); err == nil {
		seed(cfg)
	}
	return flagSet
}

// LoadConfig loads and validates the configuration for a command
// Run function.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// DiskPolicy assembles the effective block-device denylist: built-ins,
// config file patterns, policy file entries, then --exclude flags.
func DiskPolicy(cfg *config.Config, policyPath string, excludes []string) (metric.DevicePolicy, error) {
	policy := slices.Clone(metric.DiskDenylist)
	policy = append(policy, cfg.Filter.Disk...)
	if policyPath != "" {
		extra, err := policyfile.ReadFile(policyPath)
		if err != nil {
			return nil, err
		}
		policy = append(policy, extra.Disk...)
	}
	return append(policy, excludes...), nil
}

// NetworkPolicy assembles the effective interface denylist, layered
// the same way as DiskPolicy.
func NetworkPolicy(cfg *config.Config, policyPath string, excludes []string) (metric.DevicePolicy, error) {
	policy := slices.Clone(metric.NetworkDenylist)
	policy = append(policy, cfg.Filter.Network...)
	if policyPath != "" {
		extra, err := policyfile.ReadFile(policyPath)
		if err != nil {
			return nil, err
		}
		policy = append(policy, extra.Network...)
	}
	return append(policy, excludes...), nil
}

// sortedCores returns the per-core keys of a CPU usage map in numeric
// order, excluding the total entry. Core keys are decimal strings, so
// a plain string sort would put "10" before "2".
func sortedCores(usage metric.CPUUsage) []string {
	cores := make([]string, 0, len(usage))
	for key := range usage {
		if key == metric.DeviceTotal {
			continue
		}
		cores = append(cores, key)
	}
	slices.SortFunc(cores, func(a, b string) int {
		left, leftErr := strconv.Atoi(a)
		right, rightErr := strconv.Atoi(b)
		if leftErr == nil && rightErr == nil {
			return left - right
		}
		return strings.Compare(a, b)
	})
	return cores
}

// sortedDevices returns the device names of a usage map in lexical
// order, excluding the total entry.
func sortedDevices[V any](usage map[string]V) []string {
	devices := make([]string, 0, len(usage))
	for device := range usage {
		if device == metric.DeviceTotal {
			continue
		}
		devices = append(devices, device)
	}
	slices.Sort(devices)
	return devices
}

func formatMB(mb float64) string {
	return fmt.Sprintf("%.2f MB", mb)
}

// PrintCPU renders CPU usage: the host-wide figure on one line, or a
// per-core table when perCore is set.
func PrintCPU(w io.Writer, usage metric.CPUUsage, perCore bool) {
	if !perCore {
		fmt.Fprintf(w, "cpu: %.1f%%\n", usage.Total())
		return
	}
	writer := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	fmt.Fprintf(writer, "CORE\tUSAGE\n")
	fmt.Fprintf(writer, "total\t%.1f%%\n", usage.Total())
	for _, core := range sortedCores(usage) {
		fmt.Fprintf(writer, "%s\t%.1f%%\n", core, usage[core])
	}
	writer.Flush()
}

// PrintDisk renders per-device disk throughput, total row first.
func PrintDisk(w io.Writer, usage metric.DiskUsage) {
	writer := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	fmt.Fprintf(writer, "DEVICE\tREAD\tWRITTEN\n")
	total := usage.Total()
	fmt.Fprintf(writer, "total\t%s\t%s\n", formatMB(total.ReadMB), formatMB(total.WriteMB))
	for _, device := range sortedDevices(usage) {
		throughput := usage[device]
		fmt.Fprintf(writer, "%s\t%s\t%s\n",
			device, formatMB(throughput.ReadMB), formatMB(throughput.WriteMB))
	}
	writer.Flush()
}

// PrintNetwork renders per-interface network throughput, total row
// first.
func PrintNetwork(w io.Writer, usage metric.NetworkUsage) {
	writer := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	fmt.Fprintf(writer, "INTERFACE\tDOWNLOAD\tUPLOAD\n")
	total := usage.Total()
	fmt.Fprintf(writer, "total\t%s\t%s\n", formatMB(total.DownloadMB), formatMB(total.UploadMB))
	for _, device := range sortedDevices(usage) {
		throughput := usage[device]
		fmt.Fprintf(writer, "%s\t%s\t%s\n",
			device, formatMB(throughput.DownloadMB), formatMB(throughput.UploadMB))
	}
	writer.Flush()
}
