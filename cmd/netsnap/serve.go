package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/netsnap/internal/netstate"
	"github.com/user/netsnap/internal/report"
	"github.com/user/netsnap/internal/storage"
	"github.com/user/netsnap/internal/web"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve snapshots over HTTP",
	Long: `Start a small HTTP API that builds a fresh snapshot per request.

Endpoints:
  GET /report?type=basic      connectivity and traffic sections
  GET /report?type=advanced   the full five-section snapshot
  GET /api/status             server metadata

Requests are rate limited per client IP.

Examples:
  netsnap serve
  netsnap serve --port 5000`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0,
		"Listen port (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// The rate limiter persists request accounting here
	db, err := storage.Initialize(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	port := cfg.WebPort
	if cmd.Flags().Changed("port") {
		port = servePort
	}

	fmt.Printf("Starting report API on http://localhost:%d\n", port)
	fmt.Println("Press Ctrl+C to stop")

	builder := report.NewBuilder(netstate.NewOSReader())
	srv := web.NewServer(builder, db, cfg, port)
	return srv.Start()
}
