package ratelimit

import (
	"context"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestGateSerializesRequests(t *testing.T) {
	g := New(50 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := g.Wait(ctx); err != nil {
			t.Fatalf("Wait: %v", err)
		}
	}
	elapsed := time.Since(start)
	if elapsed < 90*time.Millisecond {
		t.Fatalf("expected at least two gate intervals between 3 admits, elapsed %s", elapsed)
	}
}

func TestGateEnforcesMinimumInterval(t *testing.T) {
	// Even a near-zero configured interval is floored to minSafeInterval,
	// protecting the source site from misconfiguration.
	g := New(time.Millisecond)
	if g.limiter.Limit() != rate.Every(minSafeInterval) {
		t.Fatalf("expected the limit floored to one request per %s, got %v", minSafeInterval, g.limiter.Limit())
	}
}

func TestGateRespectsContextCancellation(t *testing.T) {
	g := New(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := g.Wait(ctx); err != nil {
		t.Fatalf("first Wait should succeed immediately: %v", err)
	}
	if err := g.Wait(ctx); err == nil {
		t.Fatal("expected second Wait to fail once the context deadline is exceeded")
	}
}
