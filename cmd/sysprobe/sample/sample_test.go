// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package sample

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/sysprobe-io/sysprobe/lib/config"
	"github.com/sysprobe-io/sysprobe/lib/metric"
)

func writePolicyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devices.jsonc")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing policy file: %v", err)
	}
	return path
}

func TestDiskPolicyLayering(t *testing.T) {
	policyPath := writePolicyFile(t, `{
		// site-wide exclusions
		"disk": ["dm-", "zram"],
		"network": ["virbr"],
	}`)

	cfg := config.Default()
	cfg.Filter.Disk = metric.DevicePolicy{"nbd"}

	policy, err := DiskPolicy(cfg, policyPath, []string{"sda1"})
	if err != nil {
		t.Fatalf("DiskPolicy() error: %v", err)
	}

	want := append(slices.Clone(metric.DiskDenylist), "nbd", "dm-", "zram", "sda1")
	if !reflect.DeepEqual(policy, want) {
		t.Errorf("policy = %v, want %v", policy, want)
	}
}

func TestNetworkPolicyLayering(t *testing.T) {
	policyPath := writePolicyFile(t, `{"disk": [], "network": ["virbr"]}`)

	cfg := config.Default()
	cfg.Filter.Network = metric.DevicePolicy{"wg"}

	policy, err := NetworkPolicy(cfg, policyPath, []string{"br-"})
	if err != nil {
		t.Fatalf("NetworkPolicy() error: %v", err)
	}

	want := append(slices.Clone(metric.NetworkDenylist), "wg", "virbr", "br-")
	if !reflect.DeepEqual(policy, want) {
		t.Errorf("policy = %v, want %v", policy, want)
	}
}

func TestDiskPolicyWithoutFile(t *testing.T) {
	policy, err := DiskPolicy(config.Default(), "", []string{"sr0"})
	if err != nil {
		t.Fatalf("DiskPolicy() error: %v", err)
	}

	want := append(slices.Clone(metric.DiskDenylist), "sr0")
	if !reflect.DeepEqual(policy, want) {
		t.Errorf("policy = %v, want %v", policy, want)
	}
}

func TestDiskPolicyMissingFile(t *testing.T) {
	_, err := DiskPolicy(config.Default(), "/nonexistent/devices.jsonc", nil)
	if err == nil {
		t.Fatal("DiskPolicy() = nil, want error for missing policy file")
	}
}

func TestFlagsWithConfigSeedsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("sample:\n  seconds: 7\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("SYSPROBE_CONFIG", configPath)

	var params cpuParams
	flagSet := FlagsWithConfig("cpu", &params, func(cfg *config.Config) {
		params.Seconds = cfg.Sample.Seconds
	})

	// Before parsing, the config value stands in for the default.
	if params.Seconds != 7 {
		t.Errorf("Seconds = %d before parse, want 7 from config", params.Seconds)
	}

	// An explicit flag overrides the config value.
	if err := flagSet.Parse([]string{"--seconds", "3"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if params.Seconds != 3 {
		t.Errorf("Seconds = %d after parse, want 3 from flag", params.Seconds)
	}
}

func TestFlagsWithConfigWithoutEnv(t *testing.T) {
	t.Setenv("SYSPROBE_CONFIG", "")

	var params cpuParams
	FlagsWithConfig("cpu", &params, func(cfg *config.Config) {
		params.Seconds = cfg.Sample.Seconds
	})

	if params.Seconds != metric.DefaultSampleSeconds {
		t.Errorf("Seconds = %d, want built-in default %d", params.Seconds, metric.DefaultSampleSeconds)
	}
}

func TestSortedCores(t *testing.T) {
	usage := metric.CPUUsage{
		"total": 50,
		"0":     10,
		"11":    20,
		"1":     30,
		"2":     40,
		"10":    60,
	}

	got := sortedCores(usage)
	want := []string{"0", "1", "2", "10", "11"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sortedCores() = %v, want %v", got, want)
	}
}

func TestSortedDevices(t *testing.T) {
	usage := metric.DiskUsage{
		"total": {},
		"sdb":   {},
		"sda":   {},
		"nvme0n1": {
			ReadMB: 1,
		},
	}

	got := sortedDevices(usage)
	want := []string{"nvme0n1", "sda", "sdb"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sortedDevices() = %v, want %v", got, want)
	}
}

func TestPrintCPUTotalOnly(t *testing.T) {
	usage := metric.CPUUsage{"total": 42.5, "0": 85, "1": 0}

	var buffer bytes.Buffer
	PrintCPU(&buffer, usage, false)

	if got := buffer.String(); got != "cpu: 42.5%\n" {
		t.Errorf("output = %q, want %q", got, "cpu: 42.5%\n")
	}
}

func TestPrintCPUPerCore(t *testing.T) {
	usage := metric.CPUUsage{"total": 50, "0": 100, "1": 0, "2": 75, "10": 25}

	var buffer bytes.Buffer
	PrintCPU(&buffer, usage, true)

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6 (header + total + 4 cores):\n%s",
			len(lines), buffer.String())
	}

	// Total first, then cores in numeric order.
	wantFirst := []string{"CORE", "total", "0", "1", "2", "10"}
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != wantFirst[i] {
			t.Errorf("line %d = %q, want first field %q", i, line, wantFirst[i])
		}
	}

	if !strings.Contains(lines[1], "50.0%") {
		t.Errorf("total line = %q, want 50.0%%", lines[1])
	}
}

func TestPrintDisk(t *testing.T) {
	usage := metric.DiskUsage{
		"total": {ReadMB: 3.5, WriteMB: 1.25},
		"sdb":   {ReadMB: 0.5, WriteMB: 0.25},
		"sda":   {ReadMB: 3, WriteMB: 1},
	}

	var buffer bytes.Buffer
	PrintDisk(&buffer, usage)

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buffer.String())
	}

	wantFirst := []string{"DEVICE", "total", "sda", "sdb"}
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != wantFirst[i] {
			t.Errorf("line %d = %q, want first field %q", i, line, wantFirst[i])
		}
	}

	if !strings.Contains(lines[1], "3.50 MB") || !strings.Contains(lines[1], "1.25 MB") {
		t.Errorf("total line = %q, want 3.50 MB and 1.25 MB", lines[1])
	}
}

func TestPrintNetwork(t *testing.T) {
	usage := metric.NetworkUsage{
		"total": {DownloadMB: 12.34, UploadMB: 0.56},
		"eth0":  {DownloadMB: 12.34, UploadMB: 0.56},
	}

	var buffer bytes.Buffer
	PrintNetwork(&buffer, usage)

	output := buffer.String()
	for _, want := range []string{"INTERFACE", "DOWNLOAD", "UPLOAD", "total", "eth0", "12.34 MB", "0.56 MB"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestRunCommandsRejectPositionalArgs(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
	}{
		{"cpu", func() error { return runCPU(&cpuParams{}, []string{"stray"}) }},
		{"disk", func() error { return runDisk(&diskParams{}, []string{"stray"}) }},
		{"net", func() error { return runNetwork(&networkParams{}, []string{"stray"}) }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.run()
			if err == nil {
				t.Fatal("run = nil, want error for positional argument")
			}
			if !strings.Contains(err.Error(), "no positional arguments") {
				t.Errorf("error = %q, want 'no positional arguments'", err.Error())
			}
		})
	}
}
