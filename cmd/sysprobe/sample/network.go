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

type networkParams struct {
	cli.JSONOutput
	Seconds  int      `flag:"seconds,s" default:"1" desc:"sampling window in whole seconds"`
	Excludes []string `flag:"exclude" desc:"extra interface-name substrings to exclude"`
	Policy   string   `flag:"policy" desc:"JSONC policy file with extra exclusions"`
}

// NetworkCommand returns the "net" command.
func NetworkCommand() *cli.Command {
	var params networkParams

	return &cli.Command{
		Name:    "net",
		Summary: "Sample network throughput over a window",
		Description: `Report megabytes downloaded and uploaded per network interface over
the sampling window, measured from interface byte counters under
/sys/class/net.

Loopback, virtual ethernet, container bridges, and tunnel interfaces
are excluded by default. The exclusion list grows from the config
file's filter section, a JSONC policy file, and --exclude flags; an
interface is dropped when its name contains any listed substring. The
total row sums the interfaces that remain.

Figures are rounded to two decimal places per interface before the
total is computed, so the total always matches the visible rows.`,
		Usage: "sysprobe net [flags]",
		Flags: func() *pflag.FlagSet {
			return FlagsWithConfig("net", &params, func(cfg *config.Config) {
				params.Seconds = cfg.Sample.Seconds
				params.Policy = cfg.Filter.PolicyFile
			})
		},
		Run: func(args []string) error {
			return runNetwork(&params, args)
		},
		Examples: []cli.Example{
			{
				Description: "Throughput per interface over the default window",
				Command:     "sysprobe net",
			},
			{
				Description: "Thirty-second window, wireguard tunnels excluded",
				Command:     "sysprobe net --seconds 30 --exclude wg",
			},
			{
				Description: "Machine-readable output for scripts",
				Command:     "sysprobe net --json | jq '.total.download_mb'",
			},
		},
	}
}

func runNetwork(params *networkParams, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("net takes no positional arguments, got %q", args[0])
	}
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	policy, err := NetworkPolicy(cfg, params.Policy, params.Excludes)
	if err != nil {
		return err
	}

	sampler, err := metric.New()
	if err != nil {
		return err
	}
	usage, err := sampler.NetworkThroughput(params.Seconds, policy)
	if err != nil {
		return err
	}

	if done, err := params.EmitJSON(usage); done || err != nil {
		return err
	}
	PrintNetwork(os.Stdout, usage)
	return nil
}
