// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package sample

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/sysprobe-io/sysprobe/cmd/sysprobe/cli"
	"github.com/sysprobe-io/sysprobe/lib/config"
	"github.com/sysprobe-io/sysprobe/lib/metric"
)

type diskParams struct {
	cli.JSONOutput
	Seconds  int      `flag:"seconds,s" default:"1" desc:"sampling window in whole seconds"`
	Excludes []string `flag:"exclude" desc:"extra device-name substrings to exclude"`
	Policy   string   `flag:"policy" desc:"JSONC policy file with extra exclusions"`
}

// DiskCommand returns the "disk" command.
func DiskCommand() *cli.Command {
	var params diskParams

	return &cli.Command{
		Name:    "disk",
		Summary: "Sample disk throughput over a window",
		Description: `Report megabytes read and written per block device over the sampling
window, measured from two /proc/diskstats snapshots.

Loopback and ramdisk pseudo-devices are excluded by default. The
exclusion list grows from the config file's filter section, a JSONC
policy file, and --exclude flags; a device is dropped when its name
contains any listed substring. The total row sums the devices that
remain.

Partitions appear as their own devices alongside the parent disk, so
the total over-counts data written to partitioned disks. Exclude
partition names (--exclude sda1) when that matters.`,
		Usage: "sysprobe disk [flags]",
		Flags: func() *pflag.FlagSet {
			return FlagsWithConfig("disk", &params, func(cfg *config.Config) {
				params.Seconds = cfg.Sample.Seconds
				params.Policy = cfg.Filter.PolicyFile
			})
		},
		Run: func(args []string) error {
			return runDisk(&params, args)
		},
		Examples: []cli.Example{
			{
				Description: "Throughput per device over the default window",
				Command:     "sysprobe disk",
			},
			{
				Description: "Ten-second window with partitions excluded",
				Command:     "sysprobe disk --seconds 10 --exclude sda1 --exclude sda2",
			},
			{
				Description: "Extra exclusions from a policy file",
				Command:     "sysprobe disk --policy /etc/sysprobe/devices.jsonc",
			},
		},
	}
}

func runDisk(params *diskParams, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("disk takes no positional arguments, got %q", args[0])
	}
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	policy, err := DiskPolicy(cfg, params.Policy, params.Excludes)
	if err != nil {
		return err
	}

	sampler, err := metric.New()
	if err != nil {
		return err
	}
	usage, err := sampler.DiskThroughput(params.Seconds, policy)
	if err != nil {
		return err
	}

	if done, err := params.EmitJSON(usage); done || err != nil {
		return err
	}
	PrintDisk(os.Stdout, usage)
	return nil
}
