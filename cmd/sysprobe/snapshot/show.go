// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package snapshot

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/sysprobe-io/sysprobe/cmd/sysprobe/cli"
	"github.com/sysprobe-io/sysprobe/cmd/sysprobe/host"
	"github.com/sysprobe-io/sysprobe/cmd/sysprobe/sample"
	"github.com/sysprobe-io/sysprobe/lib/codec"
	"github.com/sysprobe-io/sysprobe/lib/export"
)

type showParams struct {
	cli.JSONOutput
	Identity string `flag:"identity,i" desc:"age identities file for opening sealed snapshots"`
	Diag     bool   `flag:"diag" desc:"print CBOR diagnostic notation instead of rendering"`
}

// ShowCommand returns the show command.
func ShowCommand() *cli.Command {
	var params showParams
	return &cli.Command{
		Name:    "show",
		Summary: "Render a snapshot document",
		Description: `Open a snapshot document and render it. The layers are recovered
from the file name the same way snapshot infers them when writing,
so a file written with inferred layers reads back without flags.
Sealed snapshots additionally need --identity pointing at an age
identities file holding a matching key.

A FILE of - reads a pretty-JSON snapshot from stdin, so snapshot
and show compose in a pipeline.

--diag prints the RFC 8949 diagnostic notation of a CBOR snapshot's
bare encoding, after unsealing and decompression, for inspecting
what the deterministic encoder actually wrote.`,
		Usage: "sysprobe show FILE [flags]",
		Examples: []cli.Example{
			{
				Description: "Render a snapshot file",
				Command:     "sysprobe show host.cbor.zst",
			},
			{
				Description: "Open a sealed snapshot",
				Command:     "sysprobe show host.json.age --identity ~/.config/sysprobe/identity.txt",
			},
			{
				Description: "Re-emit a stored snapshot as compact JSON",
				Command:     "sysprobe show host.cbor --json",
			},
			{
				Description: "Inspect the CBOR encoding",
				Command:     "sysprobe show host.cbor --diag",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(args []string) error {
			return runShow(&params, args)
		},
	}
}

func runShow(params *showParams, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("show takes exactly one snapshot file, got %d arguments", len(args))
	}
	path := args[0]
	options := export.InferOptions(path)
	options.Identities = params.Identity

	if params.Diag {
		return showDiag(path, options)
	}

	snapshot, err := readSnapshot(path, options)
	if err != nil {
		return err
	}
	if done, err := params.EmitJSON(snapshot); done || err != nil {
		return err
	}
	renderSnapshot(os.Stdout, snapshot)
	return nil
}

func readSnapshot(path string, options export.Options) (*export.Snapshot, error) {
	if path == "-" {
		return export.Read(os.Stdin, options)
	}
	return export.ReadFile(path, options)
}

func showDiag(path string, options export.Options) error {
	data, format, err := readRaw(path, options)
	if err != nil {
		return err
	}
	if format != export.FormatCBOR {
		return fmt.Errorf("--diag needs a CBOR snapshot, %s is %s", path, format)
	}
	notation, err := codec.Diagnose(data)
	if err != nil {
		return err
	}
	fmt.Println(notation)
	return nil
}

func readRaw(path string, options export.Options) ([]byte, export.Format, error) {
	if path == "-" {
		return export.ReadRaw(os.Stdin, options)
	}
	return export.ReadRawFile(path, options)
}

// renderSnapshot writes the human rendering: the capture header, the
// host inventory, then one table per counter family the snapshot
// carries.
func renderSnapshot(w io.Writer, snapshot *export.Snapshot) {
	fmt.Fprintf(w, "captured %s over a %ds window\n",
		snapshot.CapturedAt.UTC().Format(time.RFC3339), snapshot.SampleSeconds)
	if snapshot.Fingerprint != "" {
		fmt.Fprintf(w, "fingerprint %s\n", snapshot.Fingerprint)
	}
	fmt.Fprintln(w)
	host.PrintInfo(w, snapshot.Host)

	if len(snapshot.CPU) > 0 {
		fmt.Fprintln(w)
		sample.PrintCPU(w, snapshot.CPU, true)
	}
	if len(snapshot.Disk) > 0 {
		fmt.Fprintln(w)
		sample.PrintDisk(w, snapshot.Disk)
	}
	if len(snapshot.Network) > 0 {
		fmt.Fprintln(w)
		sample.PrintNetwork(w, snapshot.Network)
	}
}
