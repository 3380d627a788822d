package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/footscout/internal/domain"
)

func requestWithURLParam(method, target, name, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCoercePenaltyGoalsStats(t *testing.T) {
	present := 3
	rows := []domain.CompetitionStat{
		{PlayerID: 1, PenaltyGoals: &present},
		{PlayerID: 2, PenaltyGoals: nil},
		{PlayerID: 3, PenaltyGoals: nil},
	}
	out := coercePenaltyGoalsStats(rows)

	if out[0].PenaltyGoals == nil || *out[0].PenaltyGoals != 3 {
		t.Fatalf("expected present value preserved, got %v", out[0].PenaltyGoals)
	}
	if out[1].PenaltyGoals == nil || *out[1].PenaltyGoals != 0 {
		t.Fatalf("expected nil coerced to 0, got %v", out[1].PenaltyGoals)
	}
	if out[2].PenaltyGoals == nil || *out[2].PenaltyGoals != 0 {
		t.Fatalf("expected nil coerced to 0, got %v", out[2].PenaltyGoals)
	}
	// Each coerced row must own a distinct pointer, not alias the same int.
	if out[1].PenaltyGoals == out[2].PenaltyGoals {
		t.Fatal("coerced rows must not share a backing pointer")
	}
}

func TestAggregateMatches(t *testing.T) {
	matches := []domain.PlayerMatch{
		{Goals: 1, Assists: 1, MinutesPlayed: 90, Shots: 3, XG: 0.5},
		{Goals: 2, Assists: 0, MinutesPlayed: 90, Shots: 4, XG: 1.1},
	}
	agg := aggregateMatches(7, matches)
	if agg.PlayerID != 7 || agg.Matches != 2 {
		t.Fatalf("unexpected aggregate header: %+v", agg)
	}
	if agg.Goals != 3 || agg.Assists != 1 || agg.MinutesPlayed != 180 || agg.Shots != 7 {
		t.Fatalf("unexpected summed totals: %+v", agg)
	}
	if agg.XG < 1.59 || agg.XG > 1.61 {
		t.Fatalf("unexpected summed xg: %v", agg.XG)
	}
}

func TestSeasonVariantKeysIncludesNationalTeamSibling(t *testing.T) {
	season := domain.NewSeasonal(2025)
	keys := seasonVariantKeys(season)

	for _, want := range []string{"2025-2026", "2025/2026", "2025"} {
		if _, ok := keys[want]; !ok {
			t.Fatalf("expected variant key %q, got keys %v", want, keys)
		}
	}
}

func TestSumFieldStatsFiltersBySeasonAndFoldsNationalTeam(t *testing.T) {
	season := domain.NewSeasonal(2025)
	pens := 2
	rows := []domain.CompetitionStat{
		{Season: "2025-2026", Goals: 10, PenaltyGoals: &pens},
		{Season: "2025/2026", Goals: 5},   // slash-form duplicate of the same season
		{Season: "2025", Goals: 1},        // national-team sibling, same season
		{Season: "2024-2025", Goals: 100}, // different season, excluded
	}
	agg := sumFieldStats(42, season, rows)
	if agg.PlayerID != 42 || agg.Season != "2025-2026" {
		t.Fatalf("unexpected aggregate header: %+v", agg)
	}
	if agg.Goals != 16 {
		t.Fatalf("expected goals summed across variants+national-team (10+5+1=16), got %d", agg.Goals)
	}
	if agg.PenaltyGoals != 2 {
		t.Fatalf("expected penalty goals 2, got %d", agg.PenaltyGoals)
	}
}

func TestSumGoalkeeperStatsFiltersBySeason(t *testing.T) {
	season := domain.NewSeasonal(2025)
	rows := []domain.GoalkeeperStat{
		{Season: "2025-2026", Saves: 10},
		{Season: "2024-2025", Saves: 100},
	}
	agg := sumGoalkeeperStats(9, season, rows)
	if agg.Saves != 10 {
		t.Fatalf("expected only in-season saves counted, got %d", agg.Saves)
	}
}

func TestIntParam(t *testing.T) {
	req := requestWithURLParam(http.MethodGet, "/api/players/42", "id", "42")
	rec := httptest.NewRecorder()

	n, ok := intParam(rec, req, "id")
	if !ok || n != 42 {
		t.Fatalf("intParam = (%d, %v), want (42, true)", n, ok)
	}
}

func TestIntParamInvalid(t *testing.T) {
	req := requestWithURLParam(http.MethodGet, "/api/players/not-a-number", "id", "not-a-number")
	rec := httptest.NewRecorder()

	_, ok := intParam(rec, req, "id")
	if ok {
		t.Fatal("expected intParam to reject a non-numeric id")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestQueryIntParamMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/comparison/compare", nil)
	rec := httptest.NewRecorder()
	_, ok := queryIntParam(rec, req, "player1_id")
	if ok {
		t.Fatal("expected queryIntParam to reject a missing required param")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSeasonFromQueryDefaultsToCurrent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/comparison/compare", nil)
	rec := httptest.NewRecorder()
	season, ok := seasonFromQuery(rec, req)
	if !ok {
		t.Fatal("expected default season to resolve")
	}
	if season.Canonical() != domain.CurrentSeason(time.Now()).Canonical() {
		t.Fatalf("expected current season default, got %s", season.Canonical())
	}
}

func TestSeasonFromQueryRejectsMalformed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/comparison/compare?season=garbage", nil)
	rec := httptest.NewRecorder()
	_, ok := seasonFromQuery(rec, req)
	if ok {
		t.Fatal("expected malformed season to be rejected")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAvailableStatsDefaultsToField(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodGet, "/api/comparison/available-stats", nil)
	rec := httptest.NewRecorder()
	h.AvailableStats(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAvailableStatsGoalkeeper(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodGet, "/api/comparison/available-stats?player_type=goalkeeper", nil)
	rec := httptest.NewRecorder()
	h.AvailableStats(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
