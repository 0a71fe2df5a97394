// Package report renders snapshots for humans and persists them as JSON.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sysmonkit/syshealth/monitor"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true)

	alertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	healthyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00"))

	unavailableStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888"))
)

// Summary writes the fixed-format health summary for one snapshot. Categories
// whose query failed render their cause instead of data.
func Summary(w io.Writer, snap monitor.Snapshot, thresholds monitor.Thresholds) {
	rule := strings.Repeat("=", 50)

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, titleStyle.Render("SYSTEM HEALTH SUMMARY"))
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Timestamp: %s\n", snap.Timestamp.Format("2006-01-02 15:04:05"))

	if snap.System.OK() {
		sys := snap.System.Data
		fmt.Fprintf(w, "\n%s %s (%s)\n", sectionStyle.Render("System:"), sys.Hostname, sys.Platform)
		fmt.Fprintf(w, "Uptime: %.2f hours\n", sys.UptimeHours)
	} else {
		fmt.Fprintf(w, "\n%s %s\n", sectionStyle.Render("System:"), unavailableStyle.Render(snap.System.Err))
	}

	if snap.CPU.OK() {
		cpu := snap.CPU.Data
		fmt.Fprintf(w, "\n%s %.1f%%\n", sectionStyle.Render("CPU Usage:"), cpu.Percent)
		fmt.Fprintf(w, "CPU Cores: %d logical, %d physical\n", cpu.CountLogical, cpu.CountPhysical)
	} else {
		fmt.Fprintf(w, "\n%s %s\n", sectionStyle.Render("CPU Usage:"), unavailableStyle.Render(snap.CPU.Err))
	}

	if snap.Memory.OK() {
		mem := snap.Memory.Data
		fmt.Fprintf(w, "\n%s %.1f%%\n", sectionStyle.Render("Memory Usage:"), mem.Percent)
		fmt.Fprintf(w, "Memory: %.2f GB / %.2f GB\n", gigabytes(mem.Used), gigabytes(mem.Total))
	} else {
		fmt.Fprintf(w, "\n%s %s\n", sectionStyle.Render("Memory Usage:"), unavailableStyle.Render(snap.Memory.Err))
	}

	if snap.Disk.OK() {
		fmt.Fprintf(w, "\n%s\n", sectionStyle.Render("Disk Usage:"))
		for _, mount := range snap.Disk.Data.SortedMounts() {
			usage := (*snap.Disk.Data)[mount]
			fmt.Fprintf(w, "  %s: %.1f%% (%.2f GB / %.2f GB)\n", mount, usage.Percent, gigabytes(usage.Used), gigabytes(usage.Total))
		}
	} else {
		fmt.Fprintf(w, "\n%s %s\n", sectionStyle.Render("Disk Usage:"), unavailableStyle.Render(snap.Disk.Err))
	}

	if len(snap.Alerts) > 0 {
		fmt.Fprintf(w, "\n%s\n", alertStyle.Render("ALERTS:"))
		for _, alert := range snap.Alerts {
			fmt.Fprintf(w, "  - %s\n", alertStyle.Render(alert.Message))
		}
	} else {
		fmt.Fprintf(w, "\n%s\n", healthyStyle.Render("No alerts - system is healthy"))
	}

	fmt.Fprintln(w, rule)
}

func gigabytes(bytes uint64) float64 {
	return float64(bytes) / (1 << 30)
}
