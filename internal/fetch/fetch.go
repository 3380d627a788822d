// Package fetch drives a headless browser to retrieve fully
// rendered pages from the source site, serialized through a process-wide
// rate gate and retried with exponential backoff.
package fetch

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/albapepper/footscout/internal/ratelimit"
)

// Config controls retry and timeout behavior. Zero values fall back to
// sensible defaults (2 retries, 30s per-attempt timeout).
type Config struct {
	MaxRetries     int
	AttemptTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxRetries <= 0 {
		c.MaxRetries = 2
	}
	if c.AttemptTimeout <= 0 {
		c.AttemptTimeout = 30 * time.Second
	}
	return c
}

// Batch owns one headless browser session for the duration of a scrape
// batch: the session is created on first use and released when the batch
// ends. All fetches within a batch share the same process-wide rate gate.
type Batch struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	browserCtx  context.Context
	browserCancel context.CancelFunc
	gate        *ratelimit.Gate
	cfg         Config
	logger      *slog.Logger
}

// NewBatch creates a browser session scoped to the caller's context and the
// shared rate gate. Call Close when the batch (e.g. one scheduler job) ends.
func NewBatch(ctx context.Context, gate *ratelimit.Gate, cfg Config, logger *slog.Logger) *Batch {
	if logger == nil {
		logger = slog.Default()
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	return &Batch{
		allocCtx:      allocCtx,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		gate:          gate,
		cfg:           cfg.withDefaults(),
		logger:        logger,
	}
}

// Close releases the browser session. Safe to call once per batch.
func (b *Batch) Close() {
	b.browserCancel()
	b.allocCancel()
}

// Fetch retrieves the fully rendered DOM for url, waiting on the rate gate
// first and retrying transient failures with exponential backoff up to
// cfg.MaxRetries.
func (b *Batch) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= b.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * 100 * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		if err := b.gate.Wait(ctx); err != nil {
			return "", err
		}

		html, err := b.fetchOnce(ctx, url)
		if err == nil {
			if html == "" {
				lastErr = errors.New("empty document")
				b.logger.Warn("fetch returned empty document", "url", url, "attempt", attempt)
				continue
			}
			return html, nil
		}
		lastErr = err
		b.logger.Warn("fetch attempt failed", "url", url, "attempt", attempt, "error", err)
	}
	return "", lastErr
}

func (b *Batch) fetchOnce(ctx context.Context, url string) (string, error) {
	attemptCtx, cancel := context.WithTimeout(b.browserCtx, b.cfg.AttemptTimeout)
	defer cancel()

	var html string
	err := chromedp.Run(attemptCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", err
	}
	return html, nil
}
