package main

import (
	"github.com/spf13/cobra"

	"github.com/user/netsnap/internal/netstate"
	"github.com/user/netsnap/internal/report"
	"github.com/user/netsnap/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Browse a snapshot in the terminal",
	Long: `Collect one snapshot and browse it interactively.

The viewer shows connectivity, traffic totals, the interface table and
connection state counts. Press 'r' to collect a fresh snapshot, 'q'
to quit.`,
	RunE: runUI,
}

func runUI(cmd *cobra.Command, args []string) error {
	builder := report.NewBuilder(netstate.NewOSReader())
	app := tui.NewApp(builder, report.OptionsFromConfig(cfg))
	return app.Run()
}
