package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/user/netsnap/internal/model"
)

// Dashboard renders one collected snapshot.
type Dashboard struct {
	report *model.Report
	width  int
	height int
}

// NewDashboard creates a dashboard for a snapshot.
func NewDashboard(rep *model.Report, width, height int) *Dashboard {
	return &Dashboard{
		report: rep,
		width:  width,
		height: height,
	}
}

// SetSize updates the dashboard size.
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// View renders the dashboard.
func (d *Dashboard) View() string {
	var sb strings.Builder

	header := HeaderStyle.Width(d.width).Render("netsnap")
	sb.WriteString(header)
	sb.WriteString("\n\n")

	sb.WriteString(d.renderConnectivitySection())
	sb.WriteString("\n")
	sb.WriteString(d.renderTrafficSection())
	sb.WriteString("\n")
	sb.WriteString(d.renderInterfaceSection())
	sb.WriteString("\n")
	sb.WriteString(d.renderConnectionSection())
	sb.WriteString("\n")

	help := HelpStyle.Render("Press 'r' to collect again • 'q' to quit")
	sb.WriteString(help)

	return sb.String()
}

func (d *Dashboard) sectionWidth() int {
	w := d.width - 4
	if w < 40 {
		w = 40
	}
	return w
}

func (d *Dashboard) renderConnectivitySection() string {
	c := d.report.Connectivity

	content := fmt.Sprintf(
		"%s %s\n%s %s",
		LabelStyle.Render("Localhost:"),
		RenderStatus(c.LocalhostReachable, "reachable", "unreachable"),
		LabelStyle.Render("Internet:"),
		RenderStatus(c.InternetReachable, "reachable", "unreachable"),
	)

	return SectionStyle.Width(d.sectionWidth()).Render(
		SectionTitleStyle.Render("Connectivity") + "\n" + content)
}

func (d *Dashboard) renderTrafficSection() string {
	t := d.report.Traffic

	if !t.Available {
		content := DimStyle.Render("Traffic counters unavailable on this platform")
		return SectionStyle.Width(d.sectionWidth()).Render(
			SectionTitleStyle.Render("Traffic") + "\n" + content)
	}

	content := fmt.Sprintf(
		"%s %s\n%s %s\n%s %s\n%s %s",
		LabelStyle.Render("Sent:"),
		ValueStyle.Render(fmt.Sprintf("%s (%d packets)", humanBytes(t.Total.BytesSent), t.Total.PacketsSent)),
		LabelStyle.Render("Received:"),
		ValueStyle.Render(fmt.Sprintf("%s (%d packets)", humanBytes(t.Total.BytesRecv), t.Total.PacketsRecv)),
		LabelStyle.Render("Errors:"),
		ValueStyle.Render(fmt.Sprintf("in %d / out %d", t.Total.ErrIn, t.Total.ErrOut)),
		LabelStyle.Render("Drops:"),
		ValueStyle.Render(fmt.Sprintf("in %d / out %d", t.Total.DropIn, t.Total.DropOut)),
	)

	return SectionStyle.Width(d.sectionWidth()).Render(
		SectionTitleStyle.Render("Traffic") + "\n" + content)
}

func (d *Dashboard) renderInterfaceSection() string {
	items := d.report.Interfaces.Items

	if len(items) == 0 {
		content := DimStyle.Render("No interfaces reported")
		return SectionStyle.Width(d.sectionWidth()).Render(
			SectionTitleStyle.Render("Interfaces") + "\n" + content)
	}

	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)

	var rows []string
	rows = append(rows, fmt.Sprintf("%-12s %-6s %-8s %-10s %s", "Name", "Up", "Duplex", "Speed", "MTU"))
	rows = append(rows, strings.Repeat("─", 46))

	for _, name := range names {
		iface := items[name]
		up := "no"
		if iface.IsUp {
			up = "yes"
		}
		speed := "-"
		if iface.SpeedMbps > 0 {
			speed = fmt.Sprintf("%d Mbps", iface.SpeedMbps)
		}
		rows = append(rows, fmt.Sprintf("%-12s %-6s %-8s %-10s %d",
			truncate(name, 12), up, iface.Duplex, speed, iface.MTU))
	}

	for _, warning := range d.report.Interfaces.Warnings {
		rows = append(rows, WarningStyle.Render("! "+warning))
	}

	content := strings.Join(rows, "\n")
	return SectionStyle.Width(d.sectionWidth()).Render(
		SectionTitleStyle.Render("Interfaces") + "\n" + content)
}

func (d *Dashboard) renderConnectionSection() string {
	conns := d.report.Connections.Items

	if len(conns) == 0 {
		content := DimStyle.Render("No connections matched")
		return SectionStyle.Width(d.sectionWidth()).Render(
			SectionTitleStyle.Render("Connections") + "\n" + content)
	}

	byState := make(map[string]int)
	for _, c := range conns {
		key := string(c.Type)
		if c.State != model.StateNone {
			key = string(c.State)
		}
		byState[key]++
	}

	states := make([]string, 0, len(byState))
	for s := range byState {
		states = append(states, s)
	}
	sort.Strings(states)

	var rows []string
	rows = append(rows, fmt.Sprintf("%s %s",
		LabelStyle.Render("Total:"),
		ValueStyle.Render(fmt.Sprintf("%d", len(conns)))))
	for _, s := range states {
		rows = append(rows, fmt.Sprintf("  %-14s %d", s, byState[s]))
	}

	content := strings.Join(rows, "\n")
	return SectionStyle.Width(d.sectionWidth()).Render(
		SectionTitleStyle.Render("Connections") + "\n" + content)
}

func humanBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
