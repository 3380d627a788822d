// Package store owns persistence: the pooled connection, the
// reconciliation writer, the backfill engine, and the
// parameterized read queries behind the API.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/footscout/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool, registering the read
// API's prepared statements on every connection.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// registerPreparedStatements registers the statements the read API issues
// on every request. The writer and backfill engine build their own SQL
// per-call instead, since their statement shape depends on how many rows
// a given sync touches (CopyFrom vs a variable-length Batch).
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		"health_check": "SELECT 1",

		"list_players": "SELECT id, name, team, league, position, nationality, is_goalkeeper, external_id, last_updated FROM players ORDER BY id",
		"player_by_id": "SELECT id, name, team, league, position, nationality, is_goalkeeper, external_id, last_updated FROM players WHERE id = $1",

		"competition_stats_by_player": "SELECT id, player_id, season, competition_type, competition_name, games, games_starts, minutes, goals, assists, xg, npxg, xa, penalty_goals, shots, shots_on_target, yellow_cards, red_cards FROM player_competition_stats WHERE player_id = $1 ORDER BY season DESC",
		"goalkeeper_stats_by_player":  "SELECT id, player_id, season, competition_type, competition_name, games, games_starts, minutes, goals_against, goals_against_per90, shots_on_target_against, saves, save_percentage, clean_sheets, clean_sheet_percentage, wins, draws, losses, penalties_attempted, penalties_allowed, penalties_saved, penalties_missed FROM player_goalkeeper_stats WHERE player_id = $1 ORDER BY season DESC",
		"all_competition_stats":      "SELECT id, player_id, season, competition_type, competition_name, games, games_starts, minutes, goals, assists, xg, npxg, xa, penalty_goals, shots, shots_on_target, yellow_cards, red_cards FROM player_competition_stats ORDER BY player_id, season DESC",
		"all_goalkeeper_stats":       "SELECT id, player_id, season, competition_type, competition_name, games, games_starts, minutes, goals_against, goals_against_per90, shots_on_target_against, saves, save_percentage, clean_sheets, clean_sheet_percentage, wins, draws, losses, penalties_attempted, penalties_allowed, penalties_saved, penalties_missed FROM player_goalkeeper_stats ORDER BY player_id, season DESC",

		"matches_by_player": "SELECT id, player_id, match_date, competition, opponent, round, venue, result, minutes_played, goals, assists, shots, shots_on_target, xg, xa, passes_completed, passes_attempted, pass_completion_pct, key_passes, tackles, interceptions, blocks, touches, dribbles_completed, carries, fouls_committed, fouls_drawn, yellow_cards, red_cards FROM player_matches WHERE player_id = $1 ORDER BY match_date DESC",
		"match_by_id":       "SELECT id, player_id, match_date, competition, opponent, round, venue, result, minutes_played, goals, assists, shots, shots_on_target, xg, xa, passes_completed, passes_attempted, pass_completion_pct, key_passes, tackles, interceptions, blocks, touches, dribbles_completed, carries, fouls_committed, fouls_drawn, yellow_cards, red_cards FROM player_matches WHERE id = $1",
		"all_matches":       "SELECT id, player_id, match_date, competition, opponent, round, venue, result, minutes_played, goals, assists, shots, shots_on_target, xg, xa, passes_completed, passes_attempted, pass_completion_pct, key_passes, tackles, interceptions, blocks, touches, dribbles_completed, carries, fouls_committed, fouls_drawn, yellow_cards, red_cards FROM player_matches ORDER BY player_id, match_date DESC",
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
