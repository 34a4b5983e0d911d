// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package host

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/sysprobe-io/sysprobe/cmd/sysprobe/cli"
	"github.com/sysprobe-io/sysprobe/lib/hostinfo"
)

type fingerprintParams struct {
	cli.JSONOutput
	Short bool `flag:"short" desc:"print the compact host-xxxxxxxxxxxx reference form"`
}

// fingerprintOutput is the JSON shape of the fingerprint command.
type fingerprintOutput struct {
	Fingerprint string `json:"fingerprint"`
	ShortRef    string `json:"short_ref"`
}

// FingerprintCommand returns the "fingerprint" command.
func FingerprintCommand() *cli.Command {
	var params fingerprintParams

	return &cli.Command{
		Name:    "fingerprint",
		Summary: "Print the stable host fingerprint",
		Description: `Print this host's fingerprint: a keyed BLAKE3 digest of durable
machine identity (machine-id and DMI product identifiers). The
fingerprint is stable across reboots and OS upgrades on the same
hardware, and none of the raw identifiers can be recovered from it.

The command fails when no identity source is readable; fabricating a
random identity would defeat the point of a fingerprint.`,
		Usage: "sysprobe fingerprint [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("fingerprint", &params)
		},
		Run: func(args []string) error {
			return runFingerprint(&params, args)
		},
		Examples: []cli.Example{
			{
				Description: "Full 64-character fingerprint",
				Command:     "sysprobe fingerprint",
			},
			{
				Description: "Compact form for log correlation",
				Command:     "sysprobe fingerprint --short",
			},
		},
	}
}

func runFingerprint(params *fingerprintParams, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("fingerprint takes no positional arguments, got %q", args[0])
	}

	fingerprint, err := hostinfo.FingerprintHost()
	if err != nil {
		return err
	}

	output := fingerprintOutput{
		Fingerprint: fingerprint.Hex(),
		ShortRef:    fingerprint.ShortRef(),
	}
	if done, err := params.EmitJSON(output); done || err != nil {
		return err
	}

	if params.Short {
		fmt.Fprintln(os.Stdout, output.ShortRef)
	} else {
		fmt.Fprintln(os.Stdout, output.Fingerprint)
	}
	return nil
}
