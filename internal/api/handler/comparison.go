package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/albapepper/footscout/internal/api/respond"
	"github.com/albapepper/footscout/internal/domain"
	"github.com/albapepper/footscout/internal/store"
)

// FieldSeasonAggregate sums competition-stat rows for one player across every season
// variant (club + national-team sibling).
type FieldSeasonAggregate struct {
	PlayerID      int     `json:"player_id"`
	Season        string  `json:"season"`
	Games         int     `json:"games"`
	GamesStarts   int     `json:"games_starts"`
	Minutes       int     `json:"minutes"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	XG            float64 `json:"xg"`
	NPXG          float64 `json:"npxg"`
	XA            float64 `json:"xa"`
	PenaltyGoals  int     `json:"penalty_goals"`
	Shots         int     `json:"shots"`
	ShotsOnTarget int     `json:"shots_on_target"`
	YellowCards   int     `json:"yellow_cards"`
	RedCards      int     `json:"red_cards"`
}

// GoalkeeperSeasonAggregate sums goalkeeper-stat rows the same way.
type GoalkeeperSeasonAggregate struct {
	PlayerID     int     `json:"player_id"`
	Season       string  `json:"season"`
	Games        int     `json:"games"`
	GamesStarts  int     `json:"games_starts"`
	Minutes      int     `json:"minutes"`
	GoalsAgainst int     `json:"goals_against"`
	Saves        int     `json:"saves"`
	CleanSheets  int     `json:"clean_sheets"`
	Wins         int     `json:"wins"`
	Draws        int     `json:"draws"`
	Losses       int     `json:"losses"`
}

func sumFieldStats(playerID int, season domain.Season, rows []domain.CompetitionStat) FieldSeasonAggregate {
	keys := seasonVariantKeys(season)
	agg := FieldSeasonAggregate{PlayerID: playerID, Season: season.Canonical()}
	for _, s := range rows {
		if _, ok := keys[s.Season]; !ok {
			continue
		}
		agg.Games += s.Games
		agg.GamesStarts += s.GamesStarts
		agg.Minutes += s.Minutes
		agg.Goals += s.Goals
		agg.Assists += s.Assists
		agg.XG += s.XG
		agg.NPXG += s.NPXG
		agg.XA += s.XA
		if s.PenaltyGoals != nil {
			agg.PenaltyGoals += *s.PenaltyGoals
		}
		agg.Shots += s.Shots
		agg.ShotsOnTarget += s.ShotsOnTarget
		agg.YellowCards += s.YellowCards
		agg.RedCards += s.RedCards
	}
	return agg
}

func sumGoalkeeperStats(playerID int, season domain.Season, rows []domain.GoalkeeperStat) GoalkeeperSeasonAggregate {
	keys := seasonVariantKeys(season)
	agg := GoalkeeperSeasonAggregate{PlayerID: playerID, Season: season.Canonical()}
	for _, s := range rows {
		if _, ok := keys[s.Season]; !ok {
			continue
		}
		agg.Games += s.Games
		agg.GamesStarts += s.GamesStarts
		agg.Minutes += s.Minutes
		agg.GoalsAgainst += s.GoalsAgainst
		agg.Saves += s.Saves
		agg.CleanSheets += s.CleanSheets
		agg.Wins += s.Wins
		agg.Draws += s.Draws
		agg.Losses += s.Losses
	}
	return agg
}

// queryIntParam parses a required int query param, writing a 400 and
// returning ok=false on failure.
func queryIntParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_PARAM", name+" is required")
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_PARAM", name+" must be an integer")
		return 0, false
	}
	return n, true
}

// handlePlayerLookupError writes the appropriate error response for a
// player-lookup failure and reports whether it did so (true = caller
// should stop).
func (h *Handler) handlePlayerLookupError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, pgx.ErrNoRows) {
		respond.WriteError(w, http.StatusNotFound, "PLAYER_NOT_FOUND", "no player with that id")
		return true
	}
	h.logger.Error("season aggregate failed", "error", err)
	respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to aggregate season stats")
	return true
}

// seasonFromQuery resolves the ?season= param, defaulting to the current
// season when absent.
func seasonFromQuery(w http.ResponseWriter, r *http.Request) (domain.Season, bool) {
	raw := r.URL.Query().Get("season")
	if raw == "" {
		return domain.CurrentSeason(time.Now()), true
	}
	season, err := domain.ParseCanonicalSeason(domain.ParseSeasonString(raw))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_SEASON", "season must look like 2025-2026 or 2025")
		return domain.Season{}, false
	}
	return season, true
}

// playerSeasonAggregate loads a player plus its season-aggregated stats,
// dispatching on the player's GK flag.
func (h *Handler) playerSeasonAggregate(r *http.Request, playerID int, season domain.Season) (domain.Player, any, error) {
	player, err := store.PlayerByID(r.Context(), h.pool, playerID)
	if err != nil {
		return domain.Player{}, nil, err
	}

	if player.IsGoalkeeper {
		rows, err := store.GoalkeeperStatsByPlayer(r.Context(), h.pool, playerID)
		if err != nil {
			return player, nil, err
		}
		return player, sumGoalkeeperStats(playerID, season, rows), nil
	}

	rows, err := store.CompetitionStatsByPlayer(r.Context(), h.pool, playerID)
	if err != nil {
		return player, nil, err
	}
	return player, sumFieldStats(playerID, season, rows), nil
}

// PlayerSeasonStats returns the per-season aggregate for one player.
// @Summary Per-player season aggregate
// @Description Returns one player's summed stats for a season, folding in the national-team sibling row.
// @Tags comparison
// @Produce json
// @Param id path int true "Player ID"
// @Param season query string false "Season, defaults to the current season"
// @Success 200 {object} handler.FieldSeasonAggregate
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/comparison/players/{id}/stats [get]
func (h *Handler) PlayerSeasonStats(w http.ResponseWriter, r *http.Request) {
	playerID, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	season, ok := seasonFromQuery(w, r)
	if !ok {
		return
	}

	_, agg, err := h.playerSeasonAggregate(r, playerID, season)
	if h.handlePlayerLookupError(w, err) {
		return
	}
	respond.WriteJSON(w, http.StatusOK, agg)
}

// Compare returns side-by-side season aggregates for two players.
// @Summary Compare two players
// @Description Side-by-side season aggregates; rejects mixed goalkeeper/field-player comparisons with 400.
// @Tags comparison
// @Produce json
// @Param player1_id query int true "First player ID"
// @Param player2_id query int true "Second player ID"
// @Param season query string false "Season, defaults to the current season"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/comparison/compare [get]
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	p1ID, ok := queryIntParam(w, r, "player1_id")
	if !ok {
		return
	}
	p2ID, ok := queryIntParam(w, r, "player2_id")
	if !ok {
		return
	}
	season, ok := seasonFromQuery(w, r)
	if !ok {
		return
	}

	// Check both players' GK flag before fetching any season stats: a
	// mixed goalkeeper/field-player comparison is rejected outright, so
	// there is no point summing stat rows for either side first.
	p1, err := store.PlayerByID(r.Context(), h.pool, p1ID)
	if h.handlePlayerLookupError(w, err) {
		return
	}
	p2, err := store.PlayerByID(r.Context(), h.pool, p2ID)
	if h.handlePlayerLookupError(w, err) {
		return
	}
	if p1.IsGoalkeeper != p2.IsGoalkeeper {
		respond.WriteError(w, http.StatusBadRequest, "MIXED_PLAYER_TYPES", "cannot compare a goalkeeper against a field player")
		return
	}

	_, agg1, err := h.playerSeasonAggregate(r, p1ID, season)
	if h.handlePlayerLookupError(w, err) {
		return
	}
	_, agg2, err := h.playerSeasonAggregate(r, p2ID, season)
	if h.handlePlayerLookupError(w, err) {
		return
	}

	respond.WriteJSON(w, http.StatusOK, map[string]any{
		"season": season.Canonical(),
		"player1": map[string]any{"player": p1, "stats": agg1},
		"player2": map[string]any{"player": p2, "stats": agg2},
	})
}

// AvailableStats returns the descriptor catalog UIs bind stat columns
// against, keyed by player type.
// @Summary Available stat descriptors
// @Description Returns the stat-field catalog for a player type, for UI binding.
// @Tags comparison
// @Produce json
// @Param player_type query string false "field or goalkeeper, defaults to field"
// @Success 200 {array} map[string]interface{}
// @Router /api/comparison/available-stats [get]
func (h *Handler) AvailableStats(w http.ResponseWriter, r *http.Request) {
	playerType := r.URL.Query().Get("player_type")
	if playerType == "goalkeeper" {
		respond.WriteJSON(w, http.StatusOK, goalkeeperStatDescriptors)
		return
	}
	respond.WriteJSON(w, http.StatusOK, fieldStatDescriptors)
}

type statDescriptor struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Unit  string `json:"unit,omitempty"`
}

var fieldStatDescriptors = []statDescriptor{
	{Key: "games", Label: "Appearances"},
	{Key: "games_starts", Label: "Starts"},
	{Key: "minutes", Label: "Minutes Played"},
	{Key: "goals", Label: "Goals"},
	{Key: "assists", Label: "Assists"},
	{Key: "xg", Label: "Expected Goals", Unit: "xG"},
	{Key: "npxg", Label: "Non-Penalty Expected Goals", Unit: "npxG"},
	{Key: "xa", Label: "Expected Assists", Unit: "xA"},
	{Key: "penalty_goals", Label: "Penalty Goals"},
	{Key: "shots", Label: "Shots"},
	{Key: "shots_on_target", Label: "Shots on Target"},
	{Key: "yellow_cards", Label: "Yellow Cards"},
	{Key: "red_cards", Label: "Red Cards"},
}

var goalkeeperStatDescriptors = []statDescriptor{
	{Key: "games", Label: "Appearances"},
	{Key: "games_starts", Label: "Starts"},
	{Key: "minutes", Label: "Minutes Played"},
	{Key: "goals_against", Label: "Goals Against"},
	{Key: "saves", Label: "Saves"},
	{Key: "clean_sheets", Label: "Clean Sheets"},
	{Key: "wins", Label: "Wins"},
	{Key: "draws", Label: "Draws"},
	{Key: "losses", Label: "Losses"},
}
