// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Sysprobe is the host inspection CLI. It reports CPU, disk, and
// network usage over short sampling windows (cpu, disk, net),
// inventories hardware and platform facts (info, arch, fingerprint),
// captures everything into portable snapshot documents (snapshot,
// show), and renders a styled one-shot summary (report).
package main
