// Package api wires the read API's router: middleware stack, swagger UI,
// and the full route tree behind internal/api/handler.
package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/footscout/internal/api/handler"
	"github.com/albapepper/footscout/internal/config"
	"github.com/albapepper/footscout/internal/scheduler"
	"github.com/albapepper/footscout/internal/store"
)

// NewRouter creates and configures the Chi router with all middleware and
// routes. sched is nil when the scheduler is disabled.
func NewRouter(pool *store.Pool, sched *scheduler.Scheduler, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type"},
		ExposedHeaders:   []string{"X-Process-Time"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting (API-side, distinct from the fetcher's scrape gate)
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(pool, sched, cfg, logger)

	// --- Routes ---

	r.Get("/", h.Root)
	r.Get("/health", h.HealthCheck)

	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.ListPlayers)
			r.Get("/{id}", h.PlayerByID)
			r.Get("/stats/competition", h.StatsCompetition)
			r.Get("/stats/goalkeeper", h.StatsGoalkeeper)
			r.Get("/stats/matches", h.StatsMatches)
		})

		r.Route("/matchlogs", func(r chi.Router) {
			r.Get("/{player_id}", h.Matchlogs)
			r.Get("/{player_id}/stats", h.MatchlogStats)
			r.Get("/match/{match_id}", h.MatchByID)
		})

		r.Route("/comparison", func(r chi.Router) {
			r.Get("/players/{id}/stats", h.PlayerSeasonStats)
			r.Get("/compare", h.Compare)
			r.Get("/available-stats", h.AvailableStats)
		})
	})

	return r
}
