package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/user/netsnap/internal/netstate"
	"github.com/user/netsnap/internal/report"
)

var (
	reportOutput       string
	reportCompact      bool
	reportPerInterface bool
	reportKinds        []string
	reportFamilies     []string
	reportTimeout      time.Duration
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Collect a snapshot and print or save it as JSON",
	Long: `Collect one network snapshot and emit it as a JSON document.

Examples:
  netsnap report
  netsnap report --compact -o snapshot.json
  netsnap report --per-interface --kinds tcp --families ipv4
  netsnap report --timeout 500ms`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "-",
		"Output file path ('-' for stdout)")
	reportCmd.Flags().BoolVar(&reportCompact, "compact", false,
		"Emit compact JSON instead of pretty-printed")
	reportCmd.Flags().BoolVar(&reportPerInterface, "per-interface", false,
		"Include a per-interface traffic breakdown")
	reportCmd.Flags().StringSliceVar(&reportKinds, "kinds", nil,
		"Connection kinds to list (tcp,udp)")
	reportCmd.Flags().StringSliceVar(&reportFamilies, "families", nil,
		"Address families to list (ipv4,ipv6)")
	reportCmd.Flags().DurationVar(&reportTimeout, "timeout", 0,
		"Connectivity probe timeout (default from config)")
}

func runReport(cmd *cobra.Command, args []string) error {
	opts := report.OptionsFromConfig(cfg)

	if cmd.Flags().Changed("per-interface") {
		opts.PerInterface = reportPerInterface
	}
	if cmd.Flags().Changed("kinds") {
		opts.Kinds = report.ParseKinds(reportKinds)
	}
	if cmd.Flags().Changed("families") {
		opts.Families = report.ParseFamilies(reportFamilies)
	}
	if cmd.Flags().Changed("timeout") {
		opts.ProbeTimeout = reportTimeout
	}

	builder := report.NewBuilder(netstate.NewOSReader())
	rep := builder.Build(context.Background(), opts)

	data, err := report.EncodeJSON(rep, !reportCompact)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := report.WriteOutput(data, reportOutput); err != nil {
		return err
	}

	if reportOutput != "" && reportOutput != "-" {
		fmt.Printf("Report saved to: %s\n", reportOutput)
	}

	return nil
}
