package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"github.com/albapepper/footscout/internal/api/respond"
	"github.com/albapepper/footscout/internal/store"
)

// ListPlayers returns the full roster.
// @Summary List players
// @Description Returns every player in the roster.
// @Tags players
// @Produce json
// @Success 200 {array} domain.Player
// @Router /api/players/ [get]
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := store.ListPlayers(r.Context(), h.pool)
	if err != nil {
		h.logger.Error("list players failed", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to list players")
		return
	}
	respond.WriteJSON(w, http.StatusOK, players)
}

// PlayerByID returns a single player by id.
// @Summary Get player
// @Description Returns one player by id.
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} domain.Player
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/players/{id} [get]
func (h *Handler) PlayerByID(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}

	player, err := store.PlayerByID(r.Context(), h.pool, id)
	if errors.Is(err, pgx.ErrNoRows) {
		respond.WriteError(w, http.StatusNotFound, "PLAYER_NOT_FOUND", "no player with that id")
		return
	}
	if err != nil {
		h.logger.Error("player lookup failed", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to look up player")
		return
	}
	respond.WriteJSON(w, http.StatusOK, player)
}

// StatsCompetition returns every competition-stat row.
// @Summary List competition stats
// @Description Returns every non-goalkeeper competition-stat row across all players.
// @Tags stats
// @Produce json
// @Success 200 {array} domain.CompetitionStat
// @Router /api/players/stats/competition [get]
func (h *Handler) StatsCompetition(w http.ResponseWriter, r *http.Request) {
	rows, err := store.AllCompetitionStats(r.Context(), h.pool)
	if err != nil {
		h.logger.Error("list competition stats failed", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to list competition stats")
		return
	}
	respond.WriteJSON(w, http.StatusOK, coercePenaltyGoalsStats(rows))
}

// StatsGoalkeeper returns every goalkeeper-stat row.
// @Summary List goalkeeper stats
// @Description Returns every goalkeeper competition-stat row across all players.
// @Tags stats
// @Produce json
// @Success 200 {array} domain.GoalkeeperStat
// @Router /api/players/stats/goalkeeper [get]
func (h *Handler) StatsGoalkeeper(w http.ResponseWriter, r *http.Request) {
	rows, err := store.AllGoalkeeperStats(r.Context(), h.pool)
	if err != nil {
		h.logger.Error("list goalkeeper stats failed", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to list goalkeeper stats")
		return
	}
	respond.WriteJSON(w, http.StatusOK, rows)
}

// StatsMatches returns every match row.
// @Summary List all matches
// @Description Returns every match row across all players.
// @Tags stats
// @Produce json
// @Success 200 {array} domain.PlayerMatch
// @Router /api/players/stats/matches [get]
func (h *Handler) StatsMatches(w http.ResponseWriter, r *http.Request) {
	rows, err := store.AllMatches(r.Context(), h.pool)
	if err != nil {
		h.logger.Error("list matches failed", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to list matches")
		return
	}
	respond.WriteJSON(w, http.StatusOK, rows)
}

// intParam parses a chi URL param as an int, writing a 400 and returning
// ok=false on failure.
func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := chi.URLParam(r, name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", name+" must be an integer")
		return 0, false
	}
	return n, true
}
