// Package web serves point-in-time network reports over HTTP.
package web

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/user/netsnap/internal/report"
	"github.com/user/netsnap/internal/storage"
	"github.com/user/netsnap/internal/util"
)

// Server is the report API server.
type Server struct {
	builder *report.Builder
	db      *storage.DB
	config  *util.Config
	port    int
	srv     *http.Server
}

// NewServer creates a new API server.
func NewServer(builder *report.Builder, db *storage.DB, cfg *util.Config, port int) *Server {
	return &Server{
		builder: builder,
		db:      db,
		config:  cfg,
		port:    port,
	}
}

// Start starts the server and blocks until shutdown.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	h := NewHandlers(s.builder, s.config)
	mux.HandleFunc("/report", h.GetReport)
	mux.HandleFunc("/api/status", h.GetStatus)

	limiter := storage.NewRateLimiter(s.db, s.config.RateLimit, s.config.RateWindow)
	handler := CORS(s.config.AllowedOrigins, RateLimit(limiter, mux))

	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		s.srv.Shutdown(ctx)
	}()

	util.Info("Report API starting on port %d", s.port)

	if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}

	return nil
}

// Stop stops the server.
func (s *Server) Stop() error {
	if s.srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.srv.Shutdown(ctx)
}
