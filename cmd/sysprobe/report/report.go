// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/sysprobe-io/sysprobe/cmd/sysprobe/cli"
	"github.com/sysprobe-io/sysprobe/cmd/sysprobe/sample"
	"github.com/sysprobe-io/sysprobe/lib/config"
	"github.com/sysprobe-io/sysprobe/lib/hostinfo"
	"github.com/sysprobe-io/sysprobe/lib/metric"
)

type reportParams struct {
	Seconds int `flag:"seconds,s" default:"1" desc:"sampling window in whole seconds"`
}

// reportData is everything the renderer needs: the host facts and one
// combined sampling pass.
type reportData struct {
	Host    hostinfo.Info
	Seconds int
	Usage   metric.Usage
}

// ReportCommand returns the report command.
func ReportCommand() *cli.Command {
	var params reportParams
	return &cli.Command{
		Name:    "report",
		Summary: "Show a styled one-shot summary of the host",
		Description: `Sample the host once and render a compact summary: identity and
uptime, usage gauges for CPU, memory, and swap, and the disk and
network throughput measured over the sampling window.

The report is for human eyes. Colors degrade automatically on
terminals without color support and disappear entirely when piped;
for machine-readable output use snapshot, or the cpu, disk, net,
and info commands with --json.`,
		Usage: "sysprobe report [flags]",
		Examples: []cli.Example{
			{
				Description: "Summarize the host over the default window",
				Command:     "sysprobe report",
			},
			{
				Description: "Average the usage gauges over ten seconds",
				Command:     "sysprobe report --seconds 10",
			},
		},
		Flags: func() *pflag.FlagSet {
			return sample.FlagsWithConfig("report", &params, func(cfg *config.Config) {
				params.Seconds = cfg.Sample.Seconds
			})
		},
		Run: func(args []string) error {
			return runReport(&params, args)
		},
	}
}

func runReport(params *reportParams, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("report takes no positional arguments, got %q", args[0])
	}
	cfg, err := sample.LoadConfig()
	if err != nil {
		return err
	}
	diskPolicy, err := sample.DiskPolicy(cfg, cfg.Filter.PolicyFile, nil)
	if err != nil {
		return err
	}
	networkPolicy, err := sample.NetworkPolicy(cfg, cfg.Filter.PolicyFile, nil)
	if err != nil {
		return err
	}
	sampler, err := metric.New()
	if err != nil {
		return err
	}
	usage, err := sampler.Sample(params.Seconds, diskPolicy, networkPolicy)
	if err != nil {
		return err
	}

	data := reportData{
		Host:    hostinfo.Probe(),
		Seconds: params.Seconds,
		Usage:   usage,
	}
	fmt.Fprint(os.Stdout, renderReport(data))
	return nil
}
