// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package snapshot implements the snapshot and show commands.
//
// snapshot captures the full probe surface, host inventory plus one
// sampling pass over every counter family, and writes it as a layered
// snapshot document: JSON or CBOR encoding, optional compression,
// optional age sealing. show opens such a document and renders it,
// whether it was written seconds or months ago, on this host or
// another one.
package snapshot
