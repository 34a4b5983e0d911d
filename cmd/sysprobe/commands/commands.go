// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete sysprobe command tree. The
// sysprobe binary is its only consumer; it exists as a package so
// command wiring stays testable without running main.
package commands

import (
	"fmt"

	"github.com/sysprobe-io/sysprobe/cmd/sysprobe/cli"
	hostcmd "github.com/sysprobe-io/sysprobe/cmd/sysprobe/host"
	reportcmd "github.com/sysprobe-io/sysprobe/cmd/sysprobe/report"
	samplecmd "github.com/sysprobe-io/sysprobe/cmd/sysprobe/sample"
	snapshotcmd "github.com/sysprobe-io/sysprobe/cmd/sysprobe/snapshot"
	"github.com/sysprobe-io/sysprobe/lib/version"
)

// Root builds and returns the complete sysprobe command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "sysprobe",
		Description: `sysprobe: host inspection from the command line.

Report CPU, disk, and network usage over a short sampling window,
inventory the host's hardware and platform, and capture everything
into portable snapshot documents.`,
		Subcommands: []*cli.Command{
			samplecmd.CPUCommand(),
			samplecmd.DiskCommand(),
			samplecmd.NetworkCommand(),
			hostcmd.InfoCommand(),
			hostcmd.ArchCommand(),
			hostcmd.FingerprintCommand(),
			snapshotcmd.SnapshotCommand(),
			snapshotcmd.ShowCommand(),
			reportcmd.ReportCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("sysprobe %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "CPU usage over a one-second window",
				Command:     "sysprobe cpu",
			},
			{
				Description: "Per-device disk throughput as JSON",
				Command:     "sysprobe disk --seconds 5 --json",
			},
			{
				Description: "Inventory the host",
				Command:     "sysprobe info",
			},
			{
				Description: "Capture a compressed snapshot",
				Command:     "sysprobe snapshot --output host.cbor.zst",
			},
			{
				Description: "Render a snapshot captured elsewhere",
				Command:     "sysprobe show host.cbor.zst",
			},
			{
				Description: "Styled summary for a quick look",
				Command:     "sysprobe report",
			},
		},
	}
}
