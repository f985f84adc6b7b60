package web

import (
	"encoding/json"
	"net/http"

	"github.com/user/netsnap/internal/report"
	"github.com/user/netsnap/internal/util"
)

// Handlers contains HTTP handlers.
type Handlers struct {
	builder *report.Builder
	config  *util.Config
}

// NewHandlers creates new handlers.
func NewHandlers(builder *report.Builder, cfg *util.Config) *Handlers {
	return &Handlers{
		builder: builder,
		config:  cfg,
	}
}

// GetReport builds and returns a snapshot. type=basic returns the
// connectivity and traffic sections; type=advanced returns the full
// five-section document. pretty=1 indents the output.
func (h *Handlers) GetReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	reportType := r.URL.Query().Get("type")
	if reportType == "" {
		reportType = "basic"
	}
	pretty := isTruthy(r.URL.Query().Get("pretty"))

	opts := report.OptionsFromConfig(h.config)

	var data []byte
	var err error

	switch reportType {
	case "basic":
		rep := h.builder.BuildBasic(r.Context(), opts)
		data, err = report.EncodeBasicJSON(rep, pretty)
	case "advanced":
		rep := h.builder.Build(r.Context(), opts)
		data, err = report.EncodeJSON(rep, pretty)
	default:
		writeError(w, `invalid report type, choose "basic" or "advanced"`, http.StatusBadRequest)
		return
	}

	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// GetStatus returns server metadata.
func (h *Handlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, map[string]interface{}{
		"status":              "ok",
		"report_types":        []string{"basic", "advanced"},
		"rate_limit":          h.config.RateLimit,
		"rate_window_seconds": int(h.config.RateWindow.Seconds()),
	})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func isTruthy(s string) bool {
	switch s {
	case "1", "true", "yes":
		return true
	}
	return false
}
