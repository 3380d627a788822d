//go:build integration

package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/albapepper/footscout/internal/config"
	"github.com/albapepper/footscout/internal/domain"
)

// setupTestPool connects to the Postgres instance named by DATABASE_URL,
// skipping the test when it isn't set. Run against a disposable database —
// these tests write and delete player rows.
func setupTestPool(t *testing.T) *Pool {
	t.Helper()
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("connect to database: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestAddPlayerAndRoundTrip(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()

	player, err := AddPlayer(ctx, pool, "Integration Test Player", "Test FC", "Test League", "FW", "Testland", false)
	if err != nil {
		t.Fatalf("AddPlayer: %v", err)
	}
	t.Cleanup(func() {
		pool.Exec(context.Background(), `DELETE FROM players WHERE id = $1`, player.ID)
	})

	got, err := PlayerByID(ctx, pool, player.ID)
	if err != nil {
		t.Fatalf("PlayerByID: %v", err)
	}
	if got.Name != "Integration Test Player" || got.IsGoalkeeper {
		t.Fatalf("unexpected player round trip: %+v", got)
	}
}

func TestWriteReplacesExistingScope(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()

	player, err := AddPlayer(ctx, pool, "Write Test Player", "Test FC", "Test League", "MF", "Testland", false)
	if err != nil {
		t.Fatalf("AddPlayer: %v", err)
	}
	t.Cleanup(func() {
		pool.Exec(context.Background(), `DELETE FROM players WHERE id = $1`, player.ID)
	})

	season := domain.NewSeasonal(2025)
	scope := domain.IncrementalScope(season)

	dossier := domain.Dossier{
		CompetitionRows: []domain.CompetitionStat{
			{Season: "2025-2026", CompetitionType: domain.League, CompetitionName: "Bundesliga", Games: 5, Goals: 2},
		},
	}

	report, err := Write(ctx, pool, player, dossier, scope)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if report.StatRowsWritten != 1 {
		t.Fatalf("expected 1 stat row written, got %d", report.StatRowsWritten)
	}

	rows, err := CompetitionStatsByPlayer(ctx, pool, player.ID)
	if err != nil {
		t.Fatalf("CompetitionStatsByPlayer: %v", err)
	}
	if len(rows) != 1 || rows[0].Goals != 2 {
		t.Fatalf("unexpected stored rows: %+v", rows)
	}

	// Writing again with the same scope must replace, not duplicate.
	dossier.CompetitionRows[0].Goals = 9
	if _, err := Write(ctx, pool, player, dossier, scope); err != nil {
		t.Fatalf("second Write: %v", err)
	}
	rows, err = CompetitionStatsByPlayer(ctx, pool, player.ID)
	if err != nil {
		t.Fatalf("CompetitionStatsByPlayer after second write: %v", err)
	}
	if len(rows) != 1 || rows[0].Goals != 9 {
		t.Fatalf("expected replacement, not duplication: %+v", rows)
	}
}
