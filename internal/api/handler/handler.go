// Package handler provides HTTP handlers for the read API. Handlers
// query Postgres through internal/store and respond via
// internal/api/respond — no caching layer sits in between (see
// respond.go's package doc).
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/footscout/internal/api/respond"
	"github.com/albapepper/footscout/internal/config"
	"github.com/albapepper/footscout/internal/scheduler"
	"github.com/albapepper/footscout/internal/store"
)

// Handler holds shared dependencies for every endpoint handler.
type Handler struct {
	pool   *store.Pool
	sched  *scheduler.Scheduler
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a Handler with shared dependencies. sched is nil when the
// scheduler is disabled (SCHEDULER_ENABLED=false) — the API still serves.
func New(pool *store.Pool, sched *scheduler.Scheduler, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{pool: pool, sched: sched, cfg: cfg, logger: logger}
}

// Root serves API metadata at /.
// @Summary API root info
// @Description Returns API name, environment, and scheduler next-run times.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{
		"name":        "footscout",
		"environment": h.cfg.Environment,
		"docs":        "/docs",
	}
	if h.sched != nil {
		body["scheduler_running"] = h.sched.Running()
		body["scheduler_next_runs"] = h.sched.NextRuns()
	} else {
		body["scheduler_running"] = false
	}
	respond.WriteJSON(w, http.StatusOK, body)
}

// HealthCheck reports process and database liveness.
// @Summary Health check
// @Description Returns status, timestamp, and whether the scheduler loop is running.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} respond.ErrorResponse
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.pool.HealthCheck(ctx); err != nil {
		h.logger.Error("health check failed", "error", err)
		respond.WriteError(w, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "database unreachable")
		return
	}

	running := false
	if h.sched != nil {
		running = h.sched.Running()
	}

	respond.WriteJSON(w, http.StatusOK, map[string]any{
		"status":            "ok",
		"timestamp":         time.Now().UTC(),
		"scheduler_running": running,
	})
}
