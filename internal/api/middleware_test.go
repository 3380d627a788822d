package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestTimingMiddlewareSetsHeader(t *testing.T) {
	handler := TimingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Header().Get("X-Process-Time") == "" {
		t.Fatal("expected X-Process-Time header to be set")
	}
}

func TestRateLimitMiddlewareBlocksAfterBurst(t *testing.T) {
	mw := RateLimitMiddleware(4, time.Minute) // burst = 2
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var lastStatus int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		lastStatus = rec.Code
	}
	if lastStatus != http.StatusTooManyRequests {
		t.Fatalf("expected the 3rd request within the burst window to be rate-limited, got %d", lastStatus)
	}
}

func TestRateLimitMiddlewareIsPerIP(t *testing.T) {
	mw := RateLimitMiddleware(4, time.Minute) // burst = 2
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Exhaust the burst for one IP.
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
	}

	// A different IP should still be allowed.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.3:5555"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected a distinct IP to be unaffected by another IP's rate limit, got %d", rec.Code)
	}
}
