package rest

import (
	"context"
	"net/http"
	"time"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

const pingTimeout = 3 * time.Second

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}

// Ready is the readiness probe: 200 when the database answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	status, code := "ok", http.StatusOK
	if db.Status != "ok" {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now().UTC()})
}

// Health reports version and per-component status with latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	status, code := "ok", http.StatusOK
	if db.Status != "ok" {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: map[string]CompStatus{"database": db},
		Timestamp:  time.Now().UTC(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
