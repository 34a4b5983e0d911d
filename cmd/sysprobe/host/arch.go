// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package host

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/sysprobe-io/sysprobe/cmd/sysprobe/cli"
	"github.com/sysprobe-io/sysprobe/lib/arch"
	"github.com/sysprobe-io/sysprobe/lib/hostinfo"
)

// ArchCommand returns the "arch" command.
func ArchCommand() *cli.Command {
	return &cli.Command{
		Name:    "arch",
		Summary: "Classify architecture strings",
		Description: `Classify raw architecture strings (uname -m vocabulary) into
families: x86, ppc, arm64, armv7, armv8.

With no arguments, classifies this host's machine string. With
arguments, classifies each in turn, one line per input. Strings that
match no family print "unknown" and the command exits 1, so shell
scripts can branch on the result.`,
		Usage: "sysprobe arch [RAW...]",
		Run: func(args []string) error {
			return runArch(os.Stdout, args)
		},
		Examples: []cli.Example{
			{
				Description: "Classify this host",
				Command:     "sysprobe arch",
			},
			{
				Description: "Classify uname output from another machine",
				Command:     "sysprobe arch aarch64",
			},
			{
				Description: "Batch classification",
				Command:     "sysprobe arch x86_64 armv7l ppc64le riscv64",
			},
		},
	}
}

func runArch(w io.Writer, args []string) error {
	if len(args) == 0 {
		machine := hostinfo.Probe().Machine
		if machine == "" {
			// Platforms without uname still know their build target.
			machine = runtime.GOARCH
		}
		family, err := arch.Classify(machine)
		if err != nil {
			return fmt.Errorf("classifying %q: %w", machine, err)
		}
		fmt.Fprintf(w, "%s %s\n", machine, family)
		return nil
	}

	unknown := 0
	for _, raw := range args {
		family, err := arch.Classify(raw)
		if err != nil {
			fmt.Fprintf(w, "%s unknown\n", raw)
			unknown++
			continue
		}
		fmt.Fprintf(w, "%s %s\n", raw, family)
	}
	if unknown > 0 {
		return &cli.ExitError{Code: 1}
	}
	return nil
}
