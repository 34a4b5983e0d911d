// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the compression layer of a snapshot file.
// The values are the spellings accepted on the command line and in
// configuration files.
type Compression string

const (
	// CompressionNone writes the encoded snapshot without a
	// compression layer.
	CompressionNone Compression = "none"

	// CompressionZstd writes a standard zstd frame (decodable with
	// zstd/unzstd). Better ratios on the JSON encoding; the default
	// choice when compression is wanted.
	CompressionZstd Compression = "zstd"

	// CompressionLZ4 writes a standard lz4 frame (decodable with
	// lz4/unlz4). Faster than zstd with a weaker ratio.
	CompressionLZ4 Compression = "lz4"
)

// ParseCompression parses a compression name as given on the command
// line or in a configuration file.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return "", fmt.Errorf("unknown compression %q (want none, zstd, or lz4)", name)
	}
}

// wrapWriter layers the compression encoder over w. The returned
// writer must be closed to flush the frame trailer; closing it does
// not close w. Snapshot files are small, so the zstd encoder runs
// single-goroutine instead of spawning its default worker pool.
func (c Compression) wrapWriter(w io.Writer) (io.WriteCloser, error) {
	switch c {
	case CompressionNone, "":
		return nopWriteCloser{w}, nil

	case CompressionZstd:
		encoder, err := zstd.NewWriter(w,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderConcurrency(1),
		)
		if err != nil {
			return nil, fmt.Errorf("creating zstd encoder: %w", err)
		}
		return encoder, nil

	case CompressionLZ4:
		return lz4.NewWriter(w), nil

	default:
		return nil, fmt.Errorf("unsupported compression: %q", c)
	}
}

// wrapReader layers the compression decoder over r. The returned
// reader must be closed to release decoder resources; closing it
// does not close r.
func (c Compression) wrapReader(r io.Reader) (io.ReadCloser, error) {
	switch c {
	case CompressionNone, "":
		return io.NopCloser(r), nil

	case CompressionZstd:
		decoder, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("creating zstd decoder: %w", err)
		}
		return decoder.IOReadCloser(), nil

	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil

	default:
		return nil, fmt.Errorf("unsupported compression: %q", c)
	}
}

// nopWriteCloser adapts a plain writer to the io.WriteCloser shape
// the compression layer hands back. Close is a no-op.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
