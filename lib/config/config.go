// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/sysprobe-io/sysprobe/lib/metric"
)

// Config is the sysprobe configuration.
type Config struct {
	// Sample configures the counter sampling window.
	Sample SampleConfig `yaml:"sample"`

	// Filter configures device filtering for disk and network
	// sampling.
	Filter FilterConfig `yaml:"filter"`

	// Output configures the default snapshot output layers.
	Output OutputConfig `yaml:"output"`
}

// SampleConfig configures the counter sampling window.
type SampleConfig struct {
	// Seconds is the sampling window length in whole seconds.
	// Zero is a valid zero-delta sample.
	Seconds int `yaml:"seconds"`
}

// FilterConfig configures device filtering. Patterns given here are
// appended to the built-in denylists (metric.DiskDenylist,
// metric.NetworkDenylist), never replacing them.
type FilterConfig struct {
	// Disk is extra disk device patterns to exclude.
	Disk metric.DevicePolicy `yaml:"disk"`

	// Network is extra network interface patterns to exclude.
	Network metric.DevicePolicy `yaml:"network"`

	// PolicyFile is the path of a device policy file whose patterns
	// are merged the same way. Subject to variable expansion.
	PolicyFile string `yaml:"policy_file"`
}

// OutputConfig configures the default snapshot output layers. Both
// values use the lib/export vocabulary; they stay plain strings here
// so the CLI can layer flag overrides before parsing them once.
type OutputConfig struct {
	// Format is the snapshot encoding: json or cbor.
	Format string `yaml:"format"`

	// Compress is the snapshot compression: none, zstd, or lz4.
	Compress string `yaml:"compress"`
}

// Default returns the configuration a probe runs with when no config
// file is present.
func Default() *Config {
	return &Config{
		Sample: SampleConfig{
			Seconds: metric.DefaultSampleSeconds,
		},
		Output: OutputConfig{
			Format:   "json",
			Compress: "none",
		},
	}
}

// Load loads configuration from the path in the SYSPROBE_CONFIG
// environment variable. An unset or empty variable yields the
// defaults; a set variable pointing at an unreadable file is an
// error, not a silent fallback.
func Load() (*Config, error) {
	configPath := os.Getenv("SYSPROBE_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. Fields the
// file does not mention keep their defaults. Environment variables do
// not override config values; the only expansion performed is
// ${VAR} and ${VAR:-default} in path fields.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg.expandVariables()
	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in
// path fields.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Filter.PolicyFile = expandVars(c.Filter.PolicyFile, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Provided vars first, then the environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Sample.Seconds < 0 {
		errs = append(errs, fmt.Errorf("sample.seconds must be >= 0, got %d", c.Sample.Seconds))
	}

	switch c.Output.Format {
	case "json", "cbor":
	default:
		errs = append(errs, fmt.Errorf("output.format must be json or cbor, got %q", c.Output.Format))
	}

	switch c.Output.Compress {
	case "none", "zstd", "lz4":
	default:
		errs = append(errs, fmt.Errorf("output.compress must be none, zstd, or lz4, got %q", c.Output.Compress))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
