// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package snapshot

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/sysprobe-io/sysprobe/cmd/sysprobe/cli"
	"github.com/sysprobe-io/sysprobe/cmd/sysprobe/sample"
	"github.com/sysprobe-io/sysprobe/lib/config"
	"github.com/sysprobe-io/sysprobe/lib/export"
	"github.com/sysprobe-io/sysprobe/lib/hostinfo"
	"github.com/sysprobe-io/sysprobe/lib/metric"
)

type snapshotParams struct {
	Seconds     int      `flag:"seconds,s" default:"1" desc:"sampling window in whole seconds"`
	Output      string   `flag:"output,o" desc:"write to FILE instead of stdout"`
	Format      string   `flag:"format" desc:"snapshot encoding: json or cbor"`
	Compress    string   `flag:"compress" desc:"compression layer: none, zstd, or lz4"`
	Seal        []string `flag:"seal" desc:"age recipient to seal to; repeat for multiple readers"`
	Fingerprint bool     `flag:"fingerprint" desc:"include the stable host fingerprint"`
}

// SnapshotCommand returns the snapshot command.
func SnapshotCommand() *cli.Command {
	var params snapshotParams
	return &cli.Command{
		Name:    "snapshot",
		Summary: "Capture host facts and usage into a snapshot document",
		Description: `Capture the full probe surface in one pass: the host inventory plus
CPU, disk, and network usage measured over a single shared sampling
window, written as one snapshot document.

The document has three independent layers. The encoding is JSON or
deterministic CBOR. An optional compression layer wraps the encoding
in a standard zstd or lz4 frame. An optional sealing layer encrypts
the result to one or more age recipients, so a snapshot can cross
untrusted storage and still only be read by the holders of the
matching identities.

Each layer is chosen by its flag when given, otherwise inferred from
the --output file name (host.cbor.zst.age is sealed, zstd-compressed
CBOR), otherwise taken from the configuration file. With no opinion
from any of the three, the snapshot is pretty-printed JSON with no
compression, which composes with shell pipelines.`,
		Usage: "sysprobe snapshot [flags]",
		Examples: []cli.Example{
			{
				Description: "Print a snapshot as JSON on stdout",
				Command:     "sysprobe snapshot",
			},
			{
				Description: "Write compressed CBOR, layers inferred from the name",
				Command:     "sysprobe snapshot --output host.cbor.zst",
			},
			{
				Description: "Seal a snapshot to an age recipient",
				Command:     "sysprobe snapshot --output host.json.age --seal age1ql3z7hjy54pw3hyww5ayyfg7zqgvc7w3j2elw8zmrj2kg5sfn9aqmcac8p",
			},
			{
				Description: "Include the stable host fingerprint",
				Command:     "sysprobe snapshot --fingerprint --output host.json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return sample.FlagsWithConfig("snapshot", &params, func(cfg *config.Config) {
				params.Seconds = cfg.Sample.Seconds
			})
		},
		Run: func(args []string) error {
			return runSnapshot(&params, args)
		},
	}
}

func runSnapshot(params *snapshotParams, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("snapshot takes no positional arguments, got %q", args[0])
	}
	cfg, err := sample.LoadConfig()
	if err != nil {
		return err
	}
	options, err := resolveOptions(params, cfg)
	if err != nil {
		return err
	}
	// Recipient keys are checked before the sampling window so a typo
	// fails in milliseconds, not after the sleep.
	if err := export.ValidateRecipients(options.Recipients); err != nil {
		return err
	}

	snapshot, err := capture(params.Seconds, cfg, params.Fingerprint)
	if err != nil {
		return err
	}

	if params.Output == "" || params.Output == "-" {
		return export.Write(os.Stdout, snapshot, options)
	}
	return export.WriteFile(params.Output, snapshot, options)
}

// resolveOptions settles the output layers: an explicit flag wins,
// then whatever the output file name implies, then the configured
// defaults. Config vocabulary is already pinned by validation, so
// its values convert directly.
func resolveOptions(params *snapshotParams, cfg *config.Config) (export.Options, error) {
	options := export.InferOptions(params.Output)

	if params.Format != "" {
		format, err := export.ParseFormat(params.Format)
		if err != nil {
			return export.Options{}, err
		}
		options.Format = format
	} else if options.Format == "" {
		options.Format = export.Format(cfg.Output.Format)
	}

	if params.Compress != "" {
		compression, err := export.ParseCompression(params.Compress)
		if err != nil {
			return export.Options{}, err
		}
		options.Compression = compression
	} else if options.Compression == "" {
		options.Compression = export.Compression(cfg.Output.Compress)
	}

	if len(params.Seal) > 0 {
		options.Sealed = true
		options.Recipients = params.Seal
	}
	if options.Sealed && len(options.Recipients) == 0 {
		return export.Options{}, fmt.Errorf("output %q implies sealing; pass --seal with an age recipient", params.Output)
	}
	return options, nil
}

// capture runs the probe: one combined sampling pass plus the host
// inventory, stamped with the time the window ended.
func capture(seconds int, cfg *config.Config, withFingerprint bool) (*export.Snapshot, error) {
	diskPolicy, err := sample.DiskPolicy(cfg, cfg.Filter.PolicyFile, nil)
	if err != nil {
		return nil, err
	}
	networkPolicy, err := sample.NetworkPolicy(cfg, cfg.Filter.PolicyFile, nil)
	if err != nil {
		return nil, err
	}
	sampler, err := metric.New()
	if err != nil {
		return nil, err
	}
	usage, err := sampler.Sample(seconds, diskPolicy, networkPolicy)
	if err != nil {
		return nil, err
	}

	snapshot := &export.Snapshot{
		// Second precision: the CBOR encoding carries epoch seconds.
		CapturedAt:    time.Now().UTC().Truncate(time.Second),
		SampleSeconds: seconds,
		Host:          hostinfo.Probe(),
		CPU:           usage.CPU,
		Disk:          usage.Disk,
		Network:       usage.Network,
	}
	if withFingerprint {
		fingerprint, err := hostinfo.FingerprintHost()
		if err != nil {
			// Fingerprint sources need root on some hosts. The
			// snapshot is still worth writing without one.
			cli.NewCommandLogger().Warn("host fingerprint unavailable", "error", err)
		} else {
			snapshot.Fingerprint = fingerprint.Hex()
		}
	}
	return snapshot, nil
}
