// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sysprobe-io/sysprobe/cmd/sysprobe/host"
	"github.com/sysprobe-io/sysprobe/lib/hostinfo"
)

// gaugeWidth is the cell count of every usage gauge.
const gaugeWidth = 20

// ANSI 256-color codes, chosen for dark terminals.
var (
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	gaugeCalm = lipgloss.Color("114") // green
	gaugeWarm = lipgloss.Color("220") // amber
	gaugeHot  = lipgloss.Color("196") // red
)

// renderReport assembles the full report inside one rounded border.
func renderReport(data reportData) string {
	sections := []string{
		renderHeader(data.Host),
		renderGauges(data),
		renderThroughput(data),
	}
	return borderStyle.Render(strings.Join(sections, "\n\n")) + "\n"
}

// renderHeader shows who this host is: name, platform, distribution,
// uptime. Fields the probe could not determine are left out.
func renderHeader(info hostinfo.Info) string {
	name := info.Hostname
	if name == "" {
		name = "unknown host"
	}
	header := headerStyle.Render(name)

	var facts []string
	if info.OS != "" {
		facts = append(facts, info.OS)
	}
	if info.Machine != "" {
		facts = append(facts, info.Machine)
	}
	if distro := host.DistroLabel(info.Distro); distro != "" {
		facts = append(facts, distro)
	}
	if info.UptimeSeconds > 0 {
		facts = append(facts, "up "+host.FormatUptime(info.UptimeSeconds))
	}
	if len(facts) > 0 {
		header += "\n" + labelStyle.Render(strings.Join(facts, " · "))
	}
	return header
}

// renderGauges shows the saturation gauges: CPU always, memory and
// swap when the probe learned their sizes.
func renderGauges(data reportData) string {
	rows := []string{gaugeRow("cpu", data.Usage.CPU.Total(), "")}

	if total := data.Host.MemoryTotalMB; total > 0 {
		used := total - data.Host.MemoryFreeMB
		detail := fmt.Sprintf("%s of %s", mbBytes(used), mbBytes(total))
		rows = append(rows, gaugeRow("mem", percentOf(used, total), detail))
	}
	if total := data.Host.SwapTotalMB; total > 0 {
		used := total - data.Host.SwapFreeMB
		detail := fmt.Sprintf("%s of %s", mbBytes(used), mbBytes(total))
		rows = append(rows, gaugeRow("swap", percentOf(used, total), detail))
	}
	return strings.Join(rows, "\n")
}

// renderThroughput shows the windowed disk and network rates, plus
// the load averages when the host reports them.
func renderThroughput(data reportData) string {
	disk := data.Usage.Disk.Total()
	network := data.Usage.Network.Total()
	rows := []string{
		throughputRow("disk", "read", disk.ReadMB, "write", disk.WriteMB, data.Seconds),
		throughputRow("net", "down", network.DownloadMB, "up", network.UploadMB, data.Seconds),
	}
	if data.Host.UptimeSeconds > 0 {
		rows = append(rows, loadRow(data.Host))
	}
	return strings.Join(rows, "\n")
}

func gaugeRow(label string, percent float64, detail string) string {
	row := fmt.Sprintf("%s %s %s",
		labelStyle.Render(fmt.Sprintf("%-5s", label)),
		gauge(percent),
		valueStyle.Render(fmt.Sprintf("%5.1f%%", percent)))
	if detail != "" {
		row += "  " + labelStyle.Render(detail)
	}
	return row
}

func throughputRow(label, downName string, downMB float64, upName string, upMB float64, seconds int) string {
	return fmt.Sprintf("%s %s %s  %s %s",
		labelStyle.Render(fmt.Sprintf("%-5s", label)),
		labelStyle.Render(downName),
		valueStyle.Render(rate(downMB, seconds)),
		labelStyle.Render(upName),
		valueStyle.Render(rate(upMB, seconds)))
}

func loadRow(info hostinfo.Info) string {
	load := fmt.Sprintf("%.2f %.2f %.2f", info.Load1, info.Load5, info.Load15)
	row := fmt.Sprintf("%s %s",
		labelStyle.Render(fmt.Sprintf("%-5s", "load")),
		valueStyle.Render(load))
	if info.CPUCount > 0 {
		row += "  " + labelStyle.Render(fmt.Sprintf("%d logical cpus", info.CPUCount))
	}
	return row
}

// gauge renders a fixed-width bar, colored by how hot the value is.
func gauge(percent float64) string {
	filled := int(math.Round(percent / 100 * gaugeWidth))
	if filled < 0 {
		filled = 0
	}
	if filled > gaugeWidth {
		filled = gaugeWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", gaugeWidth-filled)
	return lipgloss.NewStyle().Foreground(gaugeColor(percent)).Render(bar)
}

func gaugeColor(percent float64) lipgloss.Color {
	switch {
	case percent >= 85:
		return gaugeHot
	case percent >= 60:
		return gaugeWarm
	default:
		return gaugeCalm
	}
}

func percentOf(used, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(used) / float64(total) * 100
}

// rate renders megabytes moved over the window as a per-second rate.
// A zero window has no rate; the raw quantity is shown instead.
func rate(mb float64, seconds int) string {
	if seconds <= 0 {
		return humanize.IBytes(uint64(mb * 1024 * 1024))
	}
	return humanize.IBytes(uint64(mb/float64(seconds)*1024*1024)) + "/s"
}

func mbBytes(mb int) string {
	if mb < 0 {
		mb = 0
	}
	return humanize.IBytes(uint64(mb) << 20)
}
