package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/albapepper/footscout/internal/domain"
)

// ListPlayers returns the full roster, ordered by id.
func ListPlayers(ctx context.Context, pool *Pool) ([]domain.Player, error) {
	rows, err := pool.Query(ctx, "list_players")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// PlayerByID returns a single player, or (domain.Player{}, pgx.ErrNoRows).
func PlayerByID(ctx context.Context, pool *Pool, id int) (domain.Player, error) {
	row := pool.QueryRow(ctx, "player_by_id", id)
	return scanPlayerRow(row)
}

// CompetitionStatsByPlayer returns every competition-stat row for a player, most recent
// season first.
func CompetitionStatsByPlayer(ctx context.Context, pool *Pool, playerID int) ([]domain.CompetitionStat, error) {
	rows, err := pool.Query(ctx, "competition_stats_by_player", playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CompetitionStat
	for rows.Next() {
		var s domain.CompetitionStat
		var competitionType string
		if err := rows.Scan(&s.ID, &s.PlayerID, &s.Season, &competitionType, &s.CompetitionName, &s.Games, &s.GamesStarts, &s.Minutes, &s.Goals, &s.Assists, &s.XG, &s.NPXG, &s.XA, &s.PenaltyGoals, &s.Shots, &s.ShotsOnTarget, &s.YellowCards, &s.RedCards); err != nil {
			return nil, err
		}
		s.CompetitionType = domain.CompetitionType(competitionType)
		out = append(out, s)
	}
	return out, rows.Err()
}

// GoalkeeperStatsByPlayer returns every goalkeeper-stat row for a player.
func GoalkeeperStatsByPlayer(ctx context.Context, pool *Pool, playerID int) ([]domain.GoalkeeperStat, error) {
	rows, err := pool.Query(ctx, "goalkeeper_stats_by_player", playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.GoalkeeperStat
	for rows.Next() {
		var s domain.GoalkeeperStat
		var competitionType string
		if err := rows.Scan(&s.ID, &s.PlayerID, &s.Season, &competitionType, &s.CompetitionName, &s.Games, &s.GamesStarts, &s.Minutes, &s.GoalsAgainst, &s.GoalsAgainstPer90, &s.ShotsOnTargetAgainst, &s.Saves, &s.SavePercentage, &s.CleanSheets, &s.CleanSheetPercentage, &s.Wins, &s.Draws, &s.Losses, &s.PenaltiesAttempted, &s.PenaltiesAllowed, &s.PenaltiesSaved, &s.PenaltiesMissed); err != nil {
			return nil, err
		}
		s.CompetitionType = domain.CompetitionType(competitionType)
		out = append(out, s)
	}
	return out, rows.Err()
}

// AllCompetitionStats returns every competition-stat row across every player.
func AllCompetitionStats(ctx context.Context, pool *Pool) ([]domain.CompetitionStat, error) {
	rows, err := pool.Query(ctx, "all_competition_stats")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CompetitionStat
	for rows.Next() {
		var s domain.CompetitionStat
		var competitionType string
		if err := rows.Scan(&s.ID, &s.PlayerID, &s.Season, &competitionType, &s.CompetitionName, &s.Games, &s.GamesStarts, &s.Minutes, &s.Goals, &s.Assists, &s.XG, &s.NPXG, &s.XA, &s.PenaltyGoals, &s.Shots, &s.ShotsOnTarget, &s.YellowCards, &s.RedCards); err != nil {
			return nil, err
		}
		s.CompetitionType = domain.CompetitionType(competitionType)
		out = append(out, s)
	}
	return out, rows.Err()
}

// AllGoalkeeperStats returns every goalkeeper-stat row across every player.
func AllGoalkeeperStats(ctx context.Context, pool *Pool) ([]domain.GoalkeeperStat, error) {
	rows, err := pool.Query(ctx, "all_goalkeeper_stats")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.GoalkeeperStat
	for rows.Next() {
		var s domain.GoalkeeperStat
		var competitionType string
		if err := rows.Scan(&s.ID, &s.PlayerID, &s.Season, &competitionType, &s.CompetitionName, &s.Games, &s.GamesStarts, &s.Minutes, &s.GoalsAgainst, &s.GoalsAgainstPer90, &s.ShotsOnTargetAgainst, &s.Saves, &s.SavePercentage, &s.CleanSheets, &s.CleanSheetPercentage, &s.Wins, &s.Draws, &s.Losses, &s.PenaltiesAttempted, &s.PenaltiesAllowed, &s.PenaltiesSaved, &s.PenaltiesMissed); err != nil {
			return nil, err
		}
		s.CompetitionType = domain.CompetitionType(competitionType)
		out = append(out, s)
	}
	return out, rows.Err()
}

// AllMatches returns every match row across every player.
func AllMatches(ctx context.Context, pool *Pool) ([]domain.PlayerMatch, error) {
	rows, err := pool.Query(ctx, "all_matches")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PlayerMatch
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// MatchFilter narrows MatchesByPlayerFiltered's result. A zero Start/End
// means no date bound; an empty Competition means no competition filter; a
// zero Limit means unbounded.
type MatchFilter struct {
	Start, End  time.Time
	Competition string
	Limit       int
}

// MatchesByPlayerFiltered applies a date-range filter (built from a
// domain.Season window, never a string match) plus an optional
// competition filter and row limit. Built ad hoc rather than prepared,
// since the clause shape varies with which filters are set.
func MatchesByPlayerFiltered(ctx context.Context, pool *Pool, playerID int, f MatchFilter) ([]domain.PlayerMatch, error) {
	var sb strings.Builder
	sb.WriteString("SELECT id, player_id, match_date, competition, opponent, round, venue, result, minutes_played, goals, assists, shots, shots_on_target, xg, xa, passes_completed, passes_attempted, pass_completion_pct, key_passes, tackles, interceptions, blocks, touches, dribbles_completed, carries, fouls_committed, fouls_drawn, yellow_cards, red_cards FROM player_matches WHERE player_id = $1")

	args := []any{playerID}
	if !f.Start.IsZero() {
		args = append(args, f.Start)
		sb.WriteString(fmt.Sprintf(" AND match_date >= $%d", len(args)))
	}
	if !f.End.IsZero() {
		args = append(args, f.End)
		sb.WriteString(fmt.Sprintf(" AND match_date <= $%d", len(args)))
	}
	if f.Competition != "" {
		args = append(args, f.Competition)
		sb.WriteString(fmt.Sprintf(" AND competition = $%d", len(args)))
	}
	sb.WriteString(" ORDER BY match_date DESC")
	if f.Limit > 0 {
		args = append(args, f.Limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}

	rows, err := pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PlayerMatch
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// MatchesByPlayer returns every match row for a player, most recent first.
func MatchesByPlayer(ctx context.Context, pool *Pool, playerID int) ([]domain.PlayerMatch, error) {
	rows, err := pool.Query(ctx, "matches_by_player", playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PlayerMatch
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// MatchByID returns a single match row.
func MatchByID(ctx context.Context, pool *Pool, id int) (domain.PlayerMatch, error) {
	row := pool.QueryRow(ctx, "match_by_id", id)
	return scanMatchRow(row)
}

// AddPlayer registers a new player to track. Apart from the minutes
// backfill, it is the only write the scraper CLI performs outside the
// reconciliation writer — new
// players start with no external id, resolved by the orchestrator's
// Resolver the first time a sync touches them.
func AddPlayer(ctx context.Context, pool *Pool, name, team, league, position, nationality string, isGoalkeeper bool) (domain.Player, error) {
	row := pool.QueryRow(ctx,
		`INSERT INTO players (name, team, league, position, nationality, is_goalkeeper, last_updated)
		 VALUES ($1, $2, $3, $4, $5, $6, CURRENT_DATE)
		 RETURNING id, name, team, league, position, nationality, is_goalkeeper, external_id, last_updated`,
		name, team, league, position, nationality, isGoalkeeper)
	return scanPlayerRow(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(rows rowScanner) (domain.Player, error) {
	var p domain.Player
	err := rows.Scan(&p.ID, &p.Name, &p.Team, &p.League, &p.Position, &p.Nationality, &p.IsGoalkeeper, &p.ExternalID, &p.LastUpdated)
	return p, err
}

func scanPlayerRow(row rowScanner) (domain.Player, error) {
	return scanPlayer(row)
}

func scanMatch(rows rowScanner) (domain.PlayerMatch, error) {
	var m domain.PlayerMatch
	err := rows.Scan(&m.ID, &m.PlayerID, &m.MatchDate, &m.Competition, &m.Opponent, &m.Round, &m.Venue, &m.Result, &m.MinutesPlayed, &m.Goals, &m.Assists, &m.Shots, &m.ShotsOnTarget, &m.XG, &m.XA, &m.PassesCompleted, &m.PassesAttempted, &m.PassCompletionPct, &m.KeyPasses, &m.Tackles, &m.Interceptions, &m.Blocks, &m.Touches, &m.DribblesCompleted, &m.Carries, &m.FoulsCommitted, &m.FoulsDrawn, &m.YellowCards, &m.RedCards)
	return m, err
}

func scanMatchRow(row rowScanner) (domain.PlayerMatch, error) {
	return scanMatch(row)
}
