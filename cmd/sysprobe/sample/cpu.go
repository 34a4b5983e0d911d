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

type cpuParams struct {
	cli.JSONOutput
	Seconds int  `flag:"seconds,s" default:"1" desc:"sampling window in whole seconds"`
	PerCore bool `flag:"per-core" desc:"report each core alongside the host total"`
}

// CPUCommand returns the "cpu" command.
func CPUCommand() *cli.Command {
	var params cpuParams

	return &cli.Command{
		Name:    "cpu",
		Summary: "Sample CPU usage over a window",
		Description: `Report CPU usage as a percentage of the sampling window.

Usage is measured from two /proc/stat snapshots taken at the start and
end of the window: the share of cycles spent outside idle and iowait.
A window of zero seconds is legal and reports an idle host.

By default only the host-wide figure is printed. With --per-core each
core appears on its own row, keyed by core index. Cores that go
offline mid-window are omitted.`,
		Usage: "sysprobe cpu [flags]",
		Flags: func() *pflag.FlagSet {
			return FlagsWithConfig("cpu", &params, func(cfg *config.Config) {
				params.Seconds = cfg.Sample.Seconds
			})
		},
		Run: func(args []string) error {
			return runCPU(&params, args)
		},
		Examples: []cli.Example{
			{
				Description: "Host-wide usage over the default one-second window",
				Command:     "sysprobe cpu",
			},
			{
				Description: "Per-core usage over five seconds",
				Command:     "sysprobe cpu --seconds 5 --per-core",
			},
			{
				Description: "Machine-readable output for scripts",
				Command:     "sysprobe cpu --json | jq .total",
			},
		},
	}
}

func runCPU(params *cpuParams, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("cpu takes no positional arguments, got %q", args[0])
	}
	if _, err := LoadConfig(); err != nil {
		return err
	}

	sampler, err := metric.New()
	if err != nil {
		return err
	}
	usage, err := sampler.CPUUsage(params.Seconds)
	if err != nil {
		return err
	}

	if done, err := params.EmitJSON(usage); done || err != nil {
		return err
	}
	PrintCPU(os.Stdout, usage, params.PerCore)
	return nil
}
