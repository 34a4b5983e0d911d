// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sysprobe-io/sysprobe/lib/codec"
	"github.com/sysprobe-io/sysprobe/lib/hostinfo"
	"github.com/sysprobe-io/sysprobe/lib/metric"
)

// Format identifies the encoding of a snapshot file.
type Format string

const (
	// FormatJSON encodes the snapshot as pretty-printed JSON with a
	// trailing newline.
	FormatJSON Format = "json"

	// FormatCBOR encodes the snapshot as deterministic CBOR: the
	// same snapshot always produces identical bytes.
	FormatCBOR Format = "cbor"
)

// ParseFormat parses a format name as given on the command line or
// in a configuration file.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "json":
		return FormatJSON, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return "", fmt.Errorf("unknown snapshot format %q (want json or cbor)", name)
	}
}

// Snapshot is one probe result: the host facts and the usage figures
// from a single sampling window, stamped with when they were taken.
type Snapshot struct {
	// CapturedAt is when the sampling window ended. Stored with
	// second precision: the CBOR encoding carries epoch seconds, so
	// finer precision would not survive a round trip.
	CapturedAt time.Time `json:"captured_at"`

	// SampleSeconds is the length of the sampling window the usage
	// figures were measured over.
	SampleSeconds int `json:"sample_seconds"`

	// Host holds the one-shot host facts.
	Host hostinfo.Info `json:"host"`

	CPU     metric.CPUUsage     `json:"cpu,omitempty"`
	Disk    metric.DiskUsage    `json:"disk,omitempty"`
	Network metric.NetworkUsage `json:"network,omitempty"`

	// Fingerprint is the stable host fingerprint in hex, when the
	// capturing user could read the hardware identity sources.
	Fingerprint string `json:"fingerprint,omitempty"`
}

// Options selects the layers of a snapshot file. The zero value
// writes pretty-printed JSON with no compression and no sealing.
type Options struct {
	Format      Format
	Compression Compression

	// Sealed marks the outermost layer as age encryption. Writing a
	// sealed snapshot requires Recipients; reading one requires
	// Identities.
	Sealed bool

	// Recipients are age X25519 public keys (age1...) the snapshot
	// is sealed to. Any one of the matching identities can open it.
	Recipients []string

	// Identities is the path to an age identities file used to read
	// sealed snapshots.
	Identities string
}

// normalized fills in defaults for unset layers and rejects values
// outside the enums, so the layer helpers below never see them.
func (o Options) normalized() (Options, error) {
	if o.Format == "" {
		o.Format = FormatJSON
	}
	if o.Compression == "" {
		o.Compression = CompressionNone
	}
	switch o.Format {
	case FormatJSON, FormatCBOR:
	default:
		return o, fmt.Errorf("unsupported snapshot format: %q", o.Format)
	}
	switch o.Compression {
	case CompressionNone, CompressionZstd, CompressionLZ4:
	default:
		return o, fmt.Errorf("unsupported compression: %q", o.Compression)
	}
	return o, nil
}

// InferOptions derives Options from a file name's extension chain,
// outermost extension last: format innermost (.json, .cbor), then
// compression (.zst, .zstd, .lz4), then .age for sealing. Extensions
// it does not recognize leave the corresponding field at its zero
// value, which Write and Read treat as pretty JSON with no
// compression or sealing. The zero values also let callers layer
// their own defaults: a zero field means the name said nothing, not
// that the name said "json".
func InferOptions(path string) Options {
	var options Options

	rest := filepath.Base(path)
	if ext := filepath.Ext(rest); ext == ".age" {
		options.Sealed = true
		rest = strings.TrimSuffix(rest, ext)
	}
	switch ext := filepath.Ext(rest); ext {
	case ".zst", ".zstd":
		options.Compression = CompressionZstd
		rest = strings.TrimSuffix(rest, ext)
	case ".lz4":
		options.Compression = CompressionLZ4
		rest = strings.TrimSuffix(rest, ext)
	}
	switch filepath.Ext(rest) {
	case ".json":
		options.Format = FormatJSON
	case ".cbor":
		options.Format = FormatCBOR
	}

	return options
}

// Write encodes the snapshot to w through the layers the options
// select. The layers are streamed; nothing buffers the whole
// ciphertext.
func Write(w io.Writer, snapshot *Snapshot, options Options) error {
	options, err := options.normalized()
	if err != nil {
		return err
	}

	sink := w
	var sealer io.WriteCloser
	if options.Sealed {
		sealer, err = sealWriter(sink, options.Recipients)
		if err != nil {
			return err
		}
		sink = sealer
	}

	compressor, err := options.Compression.wrapWriter(sink)
	if err != nil {
		return err
	}

	if err := options.Format.encode(compressor, snapshot); err != nil {
		return err
	}

	// Close order is inner layer first: the compression trailer must
	// be sealed along with the payload.
	if err := compressor.Close(); err != nil {
		return fmt.Errorf("finalizing %s stream: %w", options.Compression, err)
	}
	if sealer != nil {
		if err := sealer.Close(); err != nil {
			return fmt.Errorf("finalizing age encryption: %w", err)
		}
	}
	return nil
}

// Read decodes one snapshot from r through the layers the options
// select. Use InferOptions on the file name to recover the layers a
// Write chose.
func Read(r io.Reader, options Options) (*Snapshot, error) {
	options, err := options.normalized()
	if err != nil {
		return nil, err
	}
	payload, err := options.openLayers(r)
	if err != nil {
		return nil, err
	}
	defer payload.Close()

	var snapshot Snapshot
	if err := options.Format.decode(payload, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// ReadRaw unwraps the sealing and compression layers and returns the
// bare encoded snapshot bytes without decoding them, along with the
// format they carry. For callers that inspect the encoding itself
// rather than the snapshot, such as CBOR diagnostics.
func ReadRaw(r io.Reader, options Options) ([]byte, Format, error) {
	options, err := options.normalized()
	if err != nil {
		return nil, "", err
	}
	payload, err := options.openLayers(r)
	if err != nil {
		return nil, "", err
	}
	defer payload.Close()

	data, err := io.ReadAll(payload)
	if err != nil {
		return nil, "", fmt.Errorf("reading snapshot payload: %w", err)
	}
	return data, options.Format, nil
}

// ReadRawFile is ReadRaw over a file.
func ReadRawFile(path string, options Options) ([]byte, Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening snapshot file: %w", err)
	}
	defer file.Close()

	data, format, err := ReadRaw(file, options)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}
	return data, format, nil
}

// openLayers unwraps the sealing and compression layers around r.
// The returned reader yields the bare encoded snapshot; the caller
// closes it. Options must already be normalized.
func (o Options) openLayers(r io.Reader) (io.ReadCloser, error) {
	source := io.Reader(r)
	if o.Sealed {
		var err error
		source, err = unsealReader(source, o.Identities)
		if err != nil {
			return nil, err
		}
	}
	return o.Compression.wrapReader(source)
}

// WriteFile writes the snapshot to a file. Snapshot files carry
// hostnames and usernames, so they are created owner-only.
func WriteFile(path string, snapshot *Snapshot, options Options) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}

	if err := Write(file, snapshot, options); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing snapshot file: %w", err)
	}
	return nil
}

// ReadFile reads one snapshot from a file.
func ReadFile(path string, options Options) (*Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot file: %w", err)
	}
	defer file.Close()

	snapshot, err := Read(file, options)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return snapshot, nil
}

func (f Format) encode(w io.Writer, snapshot *Snapshot) error {
	switch f {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(snapshot); err != nil {
			return fmt.Errorf("encoding snapshot as JSON: %w", err)
		}
		return nil

	case FormatCBOR:
		if err := codec.NewEncoder(w).Encode(snapshot); err != nil {
			return fmt.Errorf("encoding snapshot as CBOR: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unsupported snapshot format: %q", f)
	}
}

func (f Format) decode(r io.Reader, snapshot *Snapshot) error {
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(snapshot); err != nil {
			return fmt.Errorf("decoding JSON snapshot: %w", err)
		}
		return nil

	case FormatCBOR:
		if err := codec.NewDecoder(r).Decode(snapshot); err != nil {
			return fmt.Errorf("decoding CBOR snapshot: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unsupported snapshot format: %q", f)
	}
}
