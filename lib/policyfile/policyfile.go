// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package policyfile loads device-policy files: extra denylist
// substrings that extend the built-in [metric.DiskDenylist] and
// [metric.NetworkDenylist]. Policy files are authored as JSONC (JSON
// extended with // line comments, /* block comments */, and trailing
// commas) so operators can annotate why a device is excluded.
//
// A policy file never replaces the built-in denylists; it only adds.
// Call sites merge explicitly:
//
//	policy, err := policyfile.ReadFile(path)
//	disk := append(metric.DiskDenylist, policy.Disk...)
package policyfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/sysprobe-io/sysprobe/lib/metric"
)

// Policy holds the extra denylist substrings from one policy file.
// Both lists may be empty; an empty policy is valid and excludes
// nothing beyond the built-ins.
type Policy struct {
	// Disk lists extra substrings excluded from block device sampling.
	Disk metric.DevicePolicy `json:"disk"`
	// Network lists extra substrings excluded from interface sampling.
	Network metric.DevicePolicy `json:"network"`
}

// Parse strips JSONC comments and trailing commas from data, then
// unmarshals the result. Unknown keys are rejected: a typo like
// "disks" silently excluding nothing would be worse than an error.
func Parse(data []byte) (Policy, error) {
	stripped := jsonc.ToJSON(data)

	var policy Policy
	decoder := json.NewDecoder(bytes.NewReader(stripped))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&policy); err != nil {
		return Policy{}, fmt.Errorf("parsing device policy: %w", err)
	}
	return policy, nil
}

// ReadFile reads and parses a JSONC policy file from disk.
func ReadFile(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("reading %s: %w", path, err)
	}
	policy, err := Parse(data)
	if err != nil {
		return Policy{}, fmt.Errorf("%s: %w", path, err)
	}
	return policy, nil
}
