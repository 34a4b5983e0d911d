// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package hostinfo

import (
	"os"
	"path/filepath"
	"testing"
)

const debianOSRelease = `PRETTY_NAME="Debian GNU/Linux 12 (bookworm)"
NAME="Debian GNU/Linux"
VERSION_ID="12"
VERSION="12 (bookworm)"
VERSION_CODENAME=bookworm
ID=debian
HOME_URL="https://www.debian.org/"
`

func TestParseOSRelease(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Distro
	}{
		{
			name:    "debian",
			content: debianOSRelease,
			want: Distro{
				ID:         "debian",
				Name:       "Debian GNU/Linux",
				VersionID:  "12",
				PrettyName: "Debian GNU/Linux 12 (bookworm)",
			},
		},
		{
			name:    "unquoted values",
			content: "ID=alpine\nNAME=Alpine Linux\nVERSION_ID=3.20.1\n",
			want:    Distro{ID: "alpine", Name: "Alpine Linux", VersionID: "3.20.1"},
		},
		{
			name:    "single quotes",
			content: "ID='arch'\nPRETTY_NAME='Arch Linux'\n",
			want:    Distro{ID: "arch", PrettyName: "Arch Linux"},
		},
		{
			name:    "comments and blanks ignored",
			content: "# generated file\n\nID=fedora\n\n# trailing comment\n",
			want:    Distro{ID: "fedora"},
		},
		{
			name:    "malformed lines ignored",
			content: "garbage without equals\nID=opensuse-leap\n=novalue\n",
			want:    Distro{ID: "opensuse-leap"},
		},
		{
			name:    "empty content",
			content: "",
			want:    Distro{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := parseOSRelease(test.content); got != test.want {
				t.Errorf("parseOSRelease() = %+v, want %+v", got, test.want)
			}
		})
	}
}

func TestReadDistro(t *testing.T) {
	root := t.TempDir()
	primary := filepath.Join(root, "etc", "os-release")
	fallback := filepath.Join(root, "usr", "lib", "os-release")

	t.Run("no file", func(t *testing.T) {
		if got := readDistro(primary, fallback); got != (Distro{}) {
			t.Errorf("readDistro() = %+v, want zero", got)
		}
	})

	t.Run("fallback only", func(t *testing.T) {
		writeSyntheticFile(t, root, "usr/lib/os-release", "ID=nixos\n")
		if got := readDistro(primary, fallback); got.ID != "nixos" {
			t.Errorf("readDistro().ID = %q, want nixos", got.ID)
		}
	})

	t.Run("primary wins", func(t *testing.T) {
		writeSyntheticFile(t, root, "etc/os-release", "ID=debian\n")
		if got := readDistro(primary, fallback); got.ID != "debian" {
			t.Errorf("readDistro().ID = %q, want debian", got.ID)
		}
	})
}

// writeSyntheticFile creates a file at the given path within root,
// creating parent directories as needed.
func writeSyntheticFile(t *testing.T, root, path, content string) {
	t.Helper()
	fullPath := filepath.Join(root, path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(fullPath), err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", fullPath, err)
	}
}
