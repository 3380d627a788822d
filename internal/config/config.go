// Package config provides centralized configuration loaded from environment
// variables. Shared by cmd/api and cmd/scraper.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every environment-derived setting the ingestion and API
// processes need.
type Config struct {
	// Database
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// Source site
	SourceBaseURL string

	// Scheduler
	SchedulerEnabled  bool
	SchedulerTimezone string
	StatsCronSpec     string
	MatchlogCronSpec  string
	JobTimeout        time.Duration

	// Fetcher
	RateLimitSeconds     int
	FetchMaxRetries      int
	FetchAttemptTimeout  time.Duration

	// Full sync
	FullSyncSeasonsBack int

	// Notifier
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	SMTPTo       string
	WebhookURL   string

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting (API-side, distinct from the fetcher's scrape gate)
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Load reads configuration from environment variables with sensible
// defaults.
func Load() (*Config, error) {
	dbURL := envOr("DATABASE_URL", "")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}

	return &Config{
		DatabaseURL:    dbURL,
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		SourceBaseURL: envOr("SOURCE_BASE_URL", ""),

		SchedulerEnabled:  envBool("SCHEDULER_ENABLED", false),
		SchedulerTimezone: envOr("SCHEDULER_TIMEZONE", "Europe/Warsaw"),
		StatsCronSpec:     envOr("SCHEDULER_STATS_CRON", "0 6 * * 1,4"),
		MatchlogCronSpec:  envOr("SCHEDULER_MATCHLOG_CRON", "0 7 * * 2"),
		JobTimeout:        time.Duration(envInt("JOB_TIMEOUT_MINUTES", 120)) * time.Minute,

		RateLimitSeconds:    envInt("RATE_LIMIT_SECONDS", 12),
		FetchMaxRetries:     envInt("FETCH_MAX_RETRIES", 2),
		FetchAttemptTimeout: time.Duration(envInt("FETCH_ATTEMPT_TIMEOUT_SECONDS", 30)) * time.Second,

		FullSyncSeasonsBack: envInt("FULL_SYNC_SEASONS_BACK", 15),

		SMTPHost:     envOr("NOTIFIER_SMTP_HOST", ""),
		SMTPPort:     envInt("NOTIFIER_SMTP_PORT", 587),
		SMTPUser:     envOr("NOTIFIER_SMTP_USER", ""),
		SMTPPassword: envOr("NOTIFIER_SMTP_PASSWORD", ""),
		SMTPFrom:     envOr("NOTIFIER_SMTP_FROM", ""),
		SMTPTo:       envOr("NOTIFIER_SMTP_TO", ""),
		WebhookURL:   envOr("NOTIFIER_WEBHOOK_URL", ""),

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
