// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "cpu"},
		{Name: "disk"},
		{Name: "net"},
		{Name: "info"},
		{Name: "arch"},
		{Name: "fingerprint"},
		{Name: "snapshot"},
		{Name: "report"},
		{Name: "version"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"snapsot", "snapshot"},
		{"snapshto", "snapshot"},
		{"verison", "version"},
		{"dsik", "disk"},
		{"figerprint", "fingerprint"},
		{"reprot", "report"},
		{"cup", "cpu"},
		// Too far from anything.
		{"zzzzzzzzzz", ""},
		{"", ""},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got := suggestCommand(test.input, commands)
			if got != test.want {
				t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
			}
		})
	}
}

func TestSuggestFlag(t *testing.T) {
	newFlagSet := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("snapshot", pflag.ContinueOnError)
		flagSet.Int("seconds", 1, "")
		flagSet.String("output", "", "")
		flagSet.String("format", "", "")
		flagSet.String("compress", "", "")
		flagSet.StringSlice("seal", nil, "")
		flagSet.Bool("fingerprint", false, "")
		return flagSet
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "close misspelling",
			args: []string{"--secodns", "5"},
			want: "--seconds",
		},
		{
			name: "transposed letters",
			args: []string{"--ouptut", "snap.json"},
			want: "--output",
		},
		{
			name: "flag with equals value",
			args: []string{"--comprses=zstd"},
			want: "--compress",
		},
		{
			name: "short flag style suggestion",
			args: []string{"--fingerprnt"},
			want: "--fingerprint",
		},
		{
			name: "defined flags are skipped",
			args: []string{"--seconds", "5", "--ouptut", "x"},
			want: "--output",
		},
		{
			name: "nothing close",
			args: []string{"--zzzzzzzzzz"},
			want: "",
		},
		{
			name: "no flags in args",
			args: []string{"positional", "another"},
			want: "",
		},
		{
			name: "empty args",
			args: nil,
			want: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := suggestFlag(test.args, newFlagSet())
			if got != test.want {
				t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
			}
		})
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"seconds", "secodns", 2},
		{"snapshot", "snapsot", 1},
		{"kitten", "sitting", 3},
		{"cpu", "cup", 2},
	}

	for _, test := range tests {
		got := levenshtein(test.a, test.b)
		if got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}
