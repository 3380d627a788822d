// Package notify delivers a SyncReport digest after every scheduled job,
// to whichever senders are configured.
package notify

import (
	"context"
	"log/slog"

	"github.com/albapepper/footscout/internal/domain"
)

// Sender delivers a SyncReport. Implementations are nil-safe: a nil
// receiver is a valid no-op, matching the nil-safe sender pattern used
// elsewhere in this package.
type Sender interface {
	Notify(ctx context.Context, report domain.SyncReport) error
}

// Multi fans a report out to every configured sender. A failure on one
// sender is logged and does not stop the rest.
type Multi struct {
	Senders []Sender
	Logger  *slog.Logger
}

func (m Multi) Notify(ctx context.Context, report domain.SyncReport) error {
	logger := m.Logger
	if logger == nil {
		logger = slog.Default()
	}
	for _, s := range m.Senders {
		if s == nil {
			continue
		}
		if err := s.Notify(ctx, report); err != nil {
			logger.Warn("notifier failed", "error", err)
		}
	}
	return nil
}
