// Package ratelimit provides the single process-wide rate gate that
// serializes every outbound fetch to the source site.
package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Gate admits at most one request per configured interval, FIFO, process-wide.
// Modeled after a standard token-bucket API-client limiter, but
// configured for a strict one-at-a-time cadence (burst 1) rather than a
// requests-per-minute budget.
type Gate struct {
	limiter *rate.Limiter
}

// minSafeInterval is a platform-safe floor protecting the source site from
// misconfiguration.
const minSafeInterval = 1 * time.Second

// New creates a Gate enforcing at least one request per interval.
func New(interval time.Duration) *Gate {
	if interval < minSafeInterval {
		interval = minSafeInterval
	}
	return &Gate{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the gate admits the caller, or ctx is done.
func (g *Gate) Wait(ctx context.Context) error {
	return g.limiter.Wait(ctx)
}
