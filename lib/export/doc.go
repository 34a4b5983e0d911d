// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package export writes and reads snapshot files: a single probe
// result (host facts plus one sampling window of CPU, disk, and
// network figures) serialized for transfer to another machine or a
// later inspection. One file holds one snapshot. This is a transport
// format, not a time-series store; nothing here appends, rotates, or
// retains.
//
// A snapshot file is built from three independent layers, innermost
// first:
//
//   - Encoding: pretty-printed JSON for human consumption, or
//     deterministic CBOR (lib/codec) when identical input must
//     produce identical bytes.
//   - Compression: none, zstd, or lz4, as standard streaming frames
//     readable by the ordinary command-line tools.
//   - Sealing: optional age encryption to one or more X25519
//     recipients. Reading a sealed file requires an identities file.
//
// The layers compose as stream wrappers, so sealing a compressed
// CBOR snapshot never buffers the intermediate ciphertext.
// InferOptions maps a file name's extension chain (snap.cbor.zst.age)
// to the matching Options; explicit Options override inference.
//
// Decoding tolerates unknown fields in both encodings, so a newer
// writer's files remain readable by an older reader.
package export
