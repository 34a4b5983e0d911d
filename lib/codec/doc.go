// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the standard CBOR encoding configuration.
//
// Two serialization formats exist with a clear boundary:
//
//   - JSON for human-facing surfaces: CLI --json output and readable
//     snapshot exports.
//   - CBOR for compact binary snapshot exports and anything meant to
//     be byte-compared or content-addressed.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, smallest integer encoding, no indefinite-length
// items. The same snapshot always produces identical bytes, which is
// what makes binary exports diffable and safe to fingerprint.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations (files, pipes):
//
//	encoder := codec.NewEncoder(w)
//	decoder := codec.NewDecoder(r)
//
// Every serialized type in this repository carries json struct tags
// only. fxamacker/cbor reads json tags as fallback when cbor tags are
// absent, so one tag controls field naming and omitempty for both
// formats. Do not add cbor tags alongside json tags.
package codec
