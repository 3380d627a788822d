// Package ingesterr defines the error taxonomy for the ingestion pipeline.
// Each variant carries enough context (player identity, the failing
// URL/page, retryability) for the scheduler to bucket it into a SyncReport
// without re-parsing error strings.
package ingesterr

import (
	"fmt"

	"github.com/albapepper/footscout/internal/domain"
)

// FetchError indicates the fetcher could not retrieve a page. Retryable distinguishes
// transient failures (network, non-2xx, empty body) from permanent ones.
type FetchError struct {
	Player    domain.PlayerRef
	URL       string
	Retryable bool
	Err       error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s for player %d (%s): %v", e.URL, e.Player.ID, e.Player.Name, e.Err)
}
func (e *FetchError) Unwrap() error { return e.Err }

// ParseError indicates the parser encountered a page shape it did not expect.
type ParseError struct {
	Player domain.PlayerRef
	Page   string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s for player %d (%s): %v", e.Page, e.Player.ID, e.Player.Name, e.Err)
}
func (e *ParseError) Unwrap() error { return e.Err }

// LookupError indicates the player could not be resolved on the source site.
// The orchestrator aborts without clearing existing data when it sees one.
type LookupError struct {
	Player domain.PlayerRef
	Err    error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup player %d (%s): %v", e.Player.ID, e.Player.Name, e.Err)
}
func (e *LookupError) Unwrap() error { return e.Err }

// WriteError indicates the reconciliation writer's transaction failed.
type WriteError struct {
	Player domain.PlayerRef
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write player %d (%s): %v", e.Player.ID, e.Player.Name, e.Err)
}
func (e *WriteError) Unwrap() error { return e.Err }

// BackfillError is non-fatal: the caller logs and continues.
type BackfillError struct {
	Player domain.PlayerRef
	Row    string
	Err    error
}

func (e *BackfillError) Error() string {
	return fmt.Sprintf("backfill %s for player %d (%s): %v", e.Row, e.Player.ID, e.Player.Name, e.Err)
}
func (e *BackfillError) Unwrap() error { return e.Err }

// ConfigError is fatal at startup.
type ConfigError struct {
	Key string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Key, e.Err)
}
func (e *ConfigError) Unwrap() error { return e.Err }
