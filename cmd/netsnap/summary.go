package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/user/netsnap/internal/model"
	"github.com/user/netsnap/internal/netstate"
	"github.com/user/netsnap/internal/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a human-readable snapshot summary",
	Long:  "Collect one snapshot and render it as a colored terminal summary instead of JSON.",
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	// Styles
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("86"))

	okStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("46")).
		Bold(true)

	failStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)

	warnStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	builder := report.NewBuilder(netstate.NewOSReader())
	rep := builder.Build(context.Background(), report.OptionsFromConfig(cfg))

	fmt.Println(titleStyle.Render("NetSnap Summary"))
	fmt.Println()

	// Connectivity
	fmt.Println(titleStyle.Render("Connectivity"))
	fmt.Print(labelStyle.Render("  Localhost: "))
	if rep.Connectivity.LocalhostReachable {
		fmt.Println(okStyle.Render("reachable"))
	} else {
		fmt.Println(failStyle.Render("unreachable"))
	}
	fmt.Print(labelStyle.Render("  Internet: "))
	if rep.Connectivity.InternetReachable {
		fmt.Println(okStyle.Render("reachable"))
	} else {
		fmt.Println(failStyle.Render("unreachable"))
	}

	// Traffic
	fmt.Println()
	fmt.Println(titleStyle.Render("Traffic"))
	if rep.Traffic.Available {
		fmt.Printf("  %s %s\n",
			labelStyle.Render("Bytes sent:"),
			valueStyle.Render(fmt.Sprintf("%d", rep.Traffic.Total.BytesSent)))
		fmt.Printf("  %s %s\n",
			labelStyle.Render("Bytes received:"),
			valueStyle.Render(fmt.Sprintf("%d", rep.Traffic.Total.BytesRecv)))
		fmt.Printf("  %s %s\n",
			labelStyle.Render("Errors in/out:"),
			valueStyle.Render(fmt.Sprintf("%d / %d", rep.Traffic.Total.ErrIn, rep.Traffic.Total.ErrOut)))
		fmt.Printf("  %s %s\n",
			labelStyle.Render("Drops in/out:"),
			valueStyle.Render(fmt.Sprintf("%d / %d", rep.Traffic.Total.DropIn, rep.Traffic.Total.DropOut)))
	} else {
		fmt.Println(warnStyle.Render("  counters unavailable"))
	}

	// Interfaces
	fmt.Println()
	fmt.Println(titleStyle.Render("Interfaces"))
	names := make([]string, 0, len(rep.Interfaces.Items))
	for name := range rep.Interfaces.Items {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		iface := rep.Interfaces.Items[name]
		status := failStyle.Render("down")
		if iface.IsUp {
			status = okStyle.Render("up")
		}
		detail := fmt.Sprintf("mtu %d, duplex %s", iface.MTU, iface.Duplex)
		if iface.SpeedMbps > 0 {
			detail = fmt.Sprintf("%s, %d Mbps", detail, iface.SpeedMbps)
		}
		fmt.Printf("  %s %s (%s)\n",
			labelStyle.Render(name+":"), status, valueStyle.Render(detail))

		for _, addr := range rep.Addresses.Items[name] {
			fmt.Printf("      %s %s\n",
				labelStyle.Render(string(addr.Family)),
				valueStyle.Render(addr.Address))
		}
	}
	for _, warning := range rep.Interfaces.Warnings {
		fmt.Println(warnStyle.Render("  ! " + warning))
	}

	// Connections
	fmt.Println()
	fmt.Println(titleStyle.Render("Connections"))
	fmt.Printf("  %s %s\n",
		labelStyle.Render("Total:"),
		valueStyle.Render(fmt.Sprintf("%d", len(rep.Connections.Items))))
	byState := make(map[model.ConnState]int)
	for _, c := range rep.Connections.Items {
		if c.State != model.StateNone {
			byState[c.State]++
		}
	}
	states := make([]string, 0, len(byState))
	for s := range byState {
		states = append(states, string(s))
	}
	sort.Strings(states)
	for _, s := range states {
		fmt.Printf("    %s %s\n",
			labelStyle.Render(s+":"),
			valueStyle.Render(fmt.Sprintf("%d", byState[model.ConnState(s)])))
	}

	return nil
}
