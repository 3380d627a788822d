package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/smtp"
	"time"

	"github.com/albapepper/footscout/internal/domain"
)

// SMTPSender delivers a plain-text digest over SMTP with STARTTLS. Nil-safe:
// NewSMTPSender returns nil when host is unset, and a nil *SMTPSender is a
// no-op, so callers never need to branch on whether it's configured.
type SMTPSender struct {
	host, port, user, password, from, to string
	logger                               *slog.Logger
}

// NewSMTPSender returns nil when host is empty (SMTP notifications disabled).
func NewSMTPSender(host, port, user, password, from, to string, logger *slog.Logger) *SMTPSender {
	if host == "" {
		return nil
	}
	return &SMTPSender{host: host, port: port, user: user, password: password, from: from, to: to, logger: logger}
}

func (s *SMTPSender) Notify(ctx context.Context, report domain.SyncReport) error {
	if s == nil {
		return nil
	}

	subject := fmt.Sprintf("[footscout] %s sync %s", report.Kind, statusWord(report))
	body := digest(report)
	msg := fmt.Appendf(nil, "From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", s.from, s.to, subject, body)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	auth := smtp.PlainAuth("", s.user, s.password, s.host)
	return smtp.SendMail(addr, auth, s.from, []string{s.to}, msg)
}

// WebhookSender POSTs the report as JSON to a configured URL. Nil-safe in
// the same way as SMTPSender.
type WebhookSender struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// NewWebhookSender returns nil when url is empty (webhook disabled).
func NewWebhookSender(url string, logger *slog.Logger) *WebhookSender {
	if url == "" {
		return nil
	}
	return &WebhookSender{url: url, client: &http.Client{Timeout: 10 * time.Second}, logger: logger}
}

func (w *WebhookSender) Notify(ctx context.Context, report domain.SyncReport) error {
	if w == nil {
		return nil
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func statusWord(report domain.SyncReport) string {
	if report.Failed == 0 {
		return "succeeded"
	}
	if report.Succeeded == 0 {
		return "failed"
	}
	return "partial"
}

func digest(report domain.SyncReport) string {
	out := report.Summary()
	for _, f := range report.Failures {
		out += fmt.Sprintf("\n  - player %d (%s): %s", f.Player.ID, f.Player.Name, f.Reason)
	}
	return out
}
