// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package hostinfo

import (
	"os"
	"strings"
)

// readDistro parses the first readable os-release file among paths.
// No readable file yields a zero Distro.
func readDistro(paths ...string) Distro {
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return parseOSRelease(string(content))
	}
	return Distro{}
}

// parseOSRelease extracts the identity fields from os-release(5)
// content: KEY=value lines with optional single or double quotes.
// Comments, blank lines, and lines without "=" are ignored.
func parseOSRelease(content string) Distro {
	var distro Distro
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		value = unquote(strings.TrimSpace(value))
		switch key {
		case "ID":
			distro.ID = value
		case "NAME":
			distro.Name = value
		case "VERSION_ID":
			distro.VersionID = value
		case "PRETTY_NAME":
			distro.PrettyName = value
		}
	}
	return distro
}

func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
