package store

import (
	"testing"
	"time"

	"github.com/albapepper/footscout/internal/domain"
)

func TestDedupCompetitionStatsKeepsFirstOccurrence(t *testing.T) {
	rows := []domain.CompetitionStat{
		{Season: "2025-2026", CompetitionType: domain.League, CompetitionName: "Bundesliga", Goals: 1},
		{Season: "2025-2026", CompetitionType: domain.League, CompetitionName: "Bundesliga", Goals: 99}, // duplicate key, dropped
		{Season: "2025-2026", CompetitionType: domain.DomesticCup, CompetitionName: "DFB-Pokal", Goals: 2},
	}
	out := dedupCompetitionStats(rows)
	if len(out) != 2 {
		t.Fatalf("expected 2 deduped rows, got %d", len(out))
	}
	if out[0].Goals != 1 {
		t.Fatalf("expected first occurrence kept (Goals=1), got %d", out[0].Goals)
	}
}

func TestDedupGoalkeeperStatsKeepsFirstOccurrence(t *testing.T) {
	rows := []domain.GoalkeeperStat{
		{Season: "2025-2026", CompetitionType: domain.League, CompetitionName: "Bundesliga", Saves: 10},
		{Season: "2025-2026", CompetitionType: domain.League, CompetitionName: "Bundesliga", Saves: 50},
	}
	out := dedupGoalkeeperStats(rows)
	if len(out) != 1 || out[0].Saves != 10 {
		t.Fatalf("expected single deduped row with Saves=10, got %+v", out)
	}
}

func TestDedupMatchesByDateCompetitionOpponent(t *testing.T) {
	date := time.Date(2025, time.October, 4, 0, 0, 0, 0, time.UTC)
	rows := []domain.PlayerMatch{
		{MatchDate: date, Competition: "Bundesliga", Opponent: "Dortmund", Goals: 1},
		{MatchDate: date, Competition: "Bundesliga", Opponent: "Dortmund", Goals: 5}, // duplicate
		{MatchDate: date, Competition: "Bundesliga", Opponent: "Leipzig", Goals: 0},
	}
	out := dedupMatches(rows)
	if len(out) != 2 {
		t.Fatalf("expected 2 deduped matches, got %d", len(out))
	}
	if out[0].Goals != 1 {
		t.Fatalf("expected first occurrence kept (Goals=1), got %d", out[0].Goals)
	}
}
