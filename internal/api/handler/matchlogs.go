package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/albapepper/footscout/internal/api/respond"
	"github.com/albapepper/footscout/internal/domain"
	"github.com/albapepper/footscout/internal/store"
)

// Matchlogs returns a player's match rows, filtered by season (a date-range
// filter, never a string match), competition, and limit.
// @Summary List a player's matches
// @Description Returns match rows for one player, optionally filtered by season, competition, and row limit.
// @Tags matchlogs
// @Produce json
// @Param player_id path int true "Player ID"
// @Param season query string false "Season, e.g. 2025-2026 or 2025"
// @Param competition query string false "Exact competition label"
// @Param limit query int false "Max rows returned"
// @Success 200 {array} domain.PlayerMatch
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/matchlogs/{player_id} [get]
func (h *Handler) Matchlogs(w http.ResponseWriter, r *http.Request) {
	playerID, ok := intParam(w, r, "player_id")
	if !ok {
		return
	}

	filter, ok := h.matchFilterFromQuery(w, r)
	if !ok {
		return
	}

	matches, err := store.MatchesByPlayerFiltered(r.Context(), h.pool, playerID, filter)
	if err != nil {
		h.logger.Error("matchlogs lookup failed", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to list matches")
		return
	}
	respond.WriteJSON(w, http.StatusOK, matches)
}

// MatchlogStats returns an aggregated summary over the same filtered set
// Matchlogs would return.
// @Summary Aggregate a player's matches
// @Description Returns totals (games, goals, assists, minutes, ...) over the filtered match set.
// @Tags matchlogs
// @Produce json
// @Param player_id path int true "Player ID"
// @Param season query string false "Season, e.g. 2025-2026 or 2025"
// @Param competition query string false "Exact competition label"
// @Param limit query int false "Max rows considered"
// @Success 200 {object} handler.MatchAggregate
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/matchlogs/{player_id}/stats [get]
func (h *Handler) MatchlogStats(w http.ResponseWriter, r *http.Request) {
	playerID, ok := intParam(w, r, "player_id")
	if !ok {
		return
	}

	filter, ok := h.matchFilterFromQuery(w, r)
	if !ok {
		return
	}

	matches, err := store.MatchesByPlayerFiltered(r.Context(), h.pool, playerID, filter)
	if err != nil {
		h.logger.Error("matchlog stats lookup failed", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to aggregate matches")
		return
	}
	respond.WriteJSON(w, http.StatusOK, aggregateMatches(playerID, matches))
}

// MatchByID returns a single match row.
// @Summary Get one match
// @Description Returns a single match row by id.
// @Tags matchlogs
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} domain.PlayerMatch
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/matchlogs/match/{match_id} [get]
func (h *Handler) MatchByID(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "match_id")
	if !ok {
		return
	}

	match, err := store.MatchByID(r.Context(), h.pool, id)
	if errors.Is(err, pgx.ErrNoRows) {
		respond.WriteError(w, http.StatusNotFound, "MATCH_NOT_FOUND", "no match with that id")
		return
	}
	if err != nil {
		h.logger.Error("match lookup failed", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to look up match")
		return
	}
	respond.WriteJSON(w, http.StatusOK, match)
}

// matchFilterFromQuery builds a store.MatchFilter from season/competition/
// limit query params, writing a 400 and returning ok=false on a malformed
// season or limit.
func (h *Handler) matchFilterFromQuery(w http.ResponseWriter, r *http.Request) (store.MatchFilter, bool) {
	q := r.URL.Query()
	var filter store.MatchFilter

	if raw := q.Get("season"); raw != "" {
		season, err := domain.ParseCanonicalSeason(domain.ParseSeasonString(raw))
		if err != nil {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_SEASON", "season must look like 2025-2026 or 2025")
			return filter, false
		}
		filter.Start, filter.End = season.Start, season.End
	}

	filter.Competition = q.Get("competition")

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be a non-negative integer")
			return filter, false
		}
		filter.Limit = n
	}

	return filter, true
}
