// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package host

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/sysprobe-io/sysprobe/cmd/sysprobe/cli"
	"github.com/sysprobe-io/sysprobe/lib/hostinfo"
)

type infoParams struct {
	cli.JSONOutput
}

// InfoCommand returns the "info" command.
func InfoCommand() *cli.Command {
	var params infoParams

	return &cli.Command{
		Name:    "info",
		Summary: "Print the host inventory",
		Description: `Print a point-in-time inventory of this host: identity, kernel,
architecture, CPU, memory, uptime, load, distribution, and
virtualization.

Every field is best-effort. Anything the host does not expose (or the
platform does not have) is omitted from the text output and zero in
the JSON output; a partial inventory is never an error.`,
		Usage: "sysprobe info [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("info", &params)
		},
		Run: func(args []string) error {
			return runInfo(&params, args)
		},
		Examples: []cli.Example{
			{
				Description: "Human-readable inventory",
				Command:     "sysprobe info",
			},
			{
				Description: "Inventory as JSON",
				Command:     "sysprobe info --json | jq .kernel_version",
			},
		},
	}
}

func runInfo(params *infoParams, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("info takes no positional arguments, got %q", args[0])
	}

	info := hostinfo.Probe()
	if done, err := params.EmitJSON(info); done || err != nil {
		return err
	}
	PrintInfo(os.Stdout, info)
	return nil
}

// PrintInfo renders the inventory as label/value rows, skipping
// fields the probe could not determine.
func PrintInfo(w io.Writer, info hostinfo.Info) {
	writer := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	row := func(label, value string) {
		if value != "" {
			fmt.Fprintf(writer, "%s\t%s\n", label, value)
		}
	}

	row("hostname", info.Hostname)
	row("os", info.OS)
	row("kernel", info.KernelVersion)

	switch {
	case info.Machine != "" && info.Architecture != "":
		row("machine", fmt.Sprintf("%s (%s)", info.Machine, info.Architecture))
	case info.Machine != "":
		row("machine", info.Machine)
	case info.Architecture != "":
		row("machine", string(info.Architecture))
	}

	cpu := fmt.Sprintf("%d logical", info.CPUCount)
	if info.CPUModel != "" {
		cpu = fmt.Sprintf("%s, %d logical", info.CPUModel, info.CPUCount)
	}
	row("cpu", cpu)

	if info.MemoryTotalMB > 0 {
		row("memory", fmt.Sprintf("%d MB total, %d MB free", info.MemoryTotalMB, info.MemoryFreeMB))
	}
	if info.SwapTotalMB > 0 {
		row("swap", fmt.Sprintf("%d MB total, %d MB free", info.SwapTotalMB, info.SwapFreeMB))
	}
	if info.UptimeSeconds > 0 {
		row("uptime", FormatUptime(info.UptimeSeconds))
		row("load", fmt.Sprintf("%.2f %.2f %.2f", info.Load1, info.Load5, info.Load15))
	}

	user := info.Username
	if info.Root {
		if user == "" {
			user = "uid 0"
		} else {
			user += " (root)"
		}
	}
	row("user", user)

	row("distro", DistroLabel(info.Distro))
	row("virtualization", virtualizationLabel(info.Virtualization))

	writer.Flush()
}

// DistroLabel picks the best available display string for a
// distribution, preferring the most descriptive field present.
func DistroLabel(distro hostinfo.Distro) string {
	switch {
	case distro.PrettyName != "":
		return distro.PrettyName
	case distro.Name != "" && distro.VersionID != "":
		return distro.Name + " " + distro.VersionID
	case distro.Name != "":
		return distro.Name
	default:
		return distro.ID
	}
}

func virtualizationLabel(virt hostinfo.Virtualization) string {
	switch {
	case virt.Container != "" && virt.Hypervisor != "":
		return fmt.Sprintf("%s container on %s", virt.Container, virt.Hypervisor)
	case virt.Container != "":
		return virt.Container + " container"
	default:
		return virt.Hypervisor
	}
}

// FormatUptime renders seconds as "12d 3h 44m". Sub-minute uptimes
// show raw seconds so a freshly booted host does not display "0m".
func FormatUptime(seconds int64) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
