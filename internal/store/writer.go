package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"

	"github.com/albapepper/footscout/internal/domain"
	"github.com/albapepper/footscout/internal/ingesterr"
)

// fullSyncCopyThreshold is the row count at or above which the writer bulk-loads
// via CopyFrom instead of a parameterized Batch. Full syncs routinely
// cross it; incremental, single-season syncs almost never do.
const fullSyncCopyThreshold = 200

// Write applies one player's dossier within a single transaction: it
// deletes the bounded slice of existing rows the scope covers, inserts
// the dossier's rows in their place (stat rows whose season is outside
// the scope are not inserted), and — only on success — runs the
// backfill engine in its own follow-up transaction. Any failure
// rolls the whole write back; the writer never partially replaces a
// player's data.
func Write(ctx context.Context, pool *Pool, player domain.Player, dossier domain.Dossier, scope domain.SeasonScope) (domain.WriteReport, error) {
	ref := domain.PlayerRef{ID: player.ID, Name: player.Name}
	report := domain.WriteReport{PlayerID: player.ID}

	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if scope.IncludeStats {
			statsDeleted, err := deleteStatVariants(ctx, tx, player.ID, scope)
			if err != nil {
				return fmt.Errorf("delete existing stat rows: %w", err)
			}
			report.StatRowsDeleted = statsDeleted

			inScope := func(season string) bool {
				for _, s := range scope.Seasons {
					if season == s.NationalTeamVariant() || slices.Contains(s.Variants(), season) {
						return true
					}
				}
				return false
			}
			competitionRows := dedupCompetitionStats(slices.DeleteFunc(slices.Clone(dossier.CompetitionRows), func(r domain.CompetitionStat) bool { return !inScope(r.Season) }))
			goalkeeperRows := dedupGoalkeeperStats(slices.DeleteFunc(slices.Clone(dossier.GoalkeeperRows), func(r domain.GoalkeeperStat) bool { return !inScope(r.Season) }))

			statWritten, err := insertCompetitionStats(ctx, tx, player.ID, competitionRows)
			if err != nil {
				return fmt.Errorf("insert competition stats: %w", err)
			}
			gkWritten, err := insertGoalkeeperStats(ctx, tx, player.ID, goalkeeperRows)
			if err != nil {
				return fmt.Errorf("insert goalkeeper stats: %w", err)
			}
			report.StatRowsWritten = statWritten + gkWritten
		}

		if scope.IncludeMatches {
			matchesDeleted, err := deleteMatchRange(ctx, tx, player.ID, scope)
			if err != nil {
				return fmt.Errorf("delete existing match rows: %w", err)
			}
			report.MatchesDeleted = matchesDeleted

			matchRows := dedupMatches(dossier.Matches)
			matchesWritten, err := insertMatches(ctx, tx, player.ID, matchRows)
			if err != nil {
				return fmt.Errorf("insert matches: %w", err)
			}
			report.MatchesWritten = matchesWritten
		}

		if scope.Full {
			if err := reseedSequences(ctx, tx); err != nil {
				return fmt.Errorf("reseed sequences: %w", err)
			}
		}

		if dossier.ExternalID != nil {
			if _, err := tx.Exec(ctx, `UPDATE players SET external_id = $1, last_updated = CURRENT_DATE WHERE id = $2`, *dossier.ExternalID, player.ID); err != nil {
				return fmt.Errorf("update player external_id: %w", err)
			}
		} else {
			if _, err := tx.Exec(ctx, `UPDATE players SET last_updated = CURRENT_DATE WHERE id = $1`, player.ID); err != nil {
				return fmt.Errorf("update player last_updated: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return domain.WriteReport{}, &ingesterr.WriteError{Player: ref, Err: err}
	}

	if len(dossier.Matches) > 0 {
		backfilled, err := RunBackfill(ctx, pool, player)
		if err != nil {
			// Backfill failures are non-fatal: the primary write already
			// committed successfully, and the next sync will retry it.
			return report, &ingesterr.BackfillError{Player: ref, Err: err}
		}
		report.BackfilledRows = backfilled
	}

	return report, nil
}

// deleteStatVariants removes competition/goalkeeper stat rows whose season
// matches any string variant of a season in scope. Goalkeeper
// rows are deleted unconditionally alongside competition rows — a
// player's is_goalkeeper flag can change (a keeper moved to an outfield
// role never happens in practice, but the delete is symmetric regardless
// so stale rows from an earlier classification can never linger).
func deleteStatVariants(ctx context.Context, tx pgx.Tx, playerID int, scope domain.SeasonScope) (int, error) {
	var total int
	for _, season := range scope.Seasons {
		variants := season.Variants()
		variants = append(variants, season.NationalTeamVariant())

		tag, err := tx.Exec(ctx, `DELETE FROM player_competition_stats WHERE player_id = $1 AND season = ANY($2)`, playerID, variants)
		if err != nil {
			return 0, err
		}
		total += int(tag.RowsAffected())

		tag, err = tx.Exec(ctx, `DELETE FROM player_goalkeeper_stats WHERE player_id = $1 AND season = ANY($2)`, playerID, variants)
		if err != nil {
			return 0, err
		}
		total += int(tag.RowsAffected())
	}
	return total, nil
}

// deleteMatchRange removes match rows by date range, never by season string,
// since match rows carry a date rather than a season label.
func deleteMatchRange(ctx context.Context, tx pgx.Tx, playerID int, scope domain.SeasonScope) (int, error) {
	var total int
	for _, season := range scope.Seasons {
		tag, err := tx.Exec(ctx, `DELETE FROM player_matches WHERE player_id = $1 AND match_date BETWEEN $2 AND $3`, playerID, season.Start, season.End)
		if err != nil {
			return 0, err
		}
		total += int(tag.RowsAffected())
	}
	return total, nil
}

func dedupCompetitionStats(rows []domain.CompetitionStat) []domain.CompetitionStat {
	seen := make(map[[2]string]struct{}, len(rows))
	out := make([]domain.CompetitionStat, 0, len(rows))
	for _, r := range rows {
		key := r.UniqueKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

func dedupGoalkeeperStats(rows []domain.GoalkeeperStat) []domain.GoalkeeperStat {
	seen := make(map[[2]string]struct{}, len(rows))
	out := make([]domain.GoalkeeperStat, 0, len(rows))
	for _, r := range rows {
		key := r.UniqueKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

func dedupMatches(rows []domain.PlayerMatch) []domain.PlayerMatch {
	seen := make(map[[3]string]struct{}, len(rows))
	out := make([]domain.PlayerMatch, 0, len(rows))
	for _, r := range rows {
		key := r.UniqueKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

func insertCompetitionStats(ctx context.Context, tx pgx.Tx, playerID int, rows []domain.CompetitionStat) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if len(rows) >= fullSyncCopyThreshold {
		cols := []string{"player_id", "season", "competition_type", "competition_name", "games", "games_starts", "minutes", "goals", "assists", "xg", "npxg", "xa", "penalty_goals", "shots", "shots_on_target", "yellow_cards", "red_cards"}
		n, err := tx.CopyFrom(ctx, pgx.Identifier{"player_competition_stats"}, cols, pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			r := rows[i]
			return []any{playerID, r.Season, string(r.CompetitionType), r.CompetitionName, r.Games, r.GamesStarts, r.Minutes, r.Goals, r.Assists, r.XG, r.NPXG, r.XA, r.PenaltyGoals, r.Shots, r.ShotsOnTarget, r.YellowCards, r.RedCards}, nil
		}))
		return int(n), err
	}

	batch := &pgx.Batch{}
	const stmt = `INSERT INTO player_competition_stats (player_id, season, competition_type, competition_name, games, games_starts, minutes, goals, assists, xg, npxg, xa, penalty_goals, shots, shots_on_target, yellow_cards, red_cards) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`
	for _, r := range rows {
		batch.Queue(stmt, playerID, r.Season, string(r.CompetitionType), r.CompetitionName, r.Games, r.GamesStarts, r.Minutes, r.Goals, r.Assists, r.XG, r.NPXG, r.XA, r.PenaltyGoals, r.Shots, r.ShotsOnTarget, r.YellowCards, r.RedCards)
	}
	return execBatch(ctx, tx, batch, len(rows))
}

func insertGoalkeeperStats(ctx context.Context, tx pgx.Tx, playerID int, rows []domain.GoalkeeperStat) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if len(rows) >= fullSyncCopyThreshold {
		cols := []string{"player_id", "season", "competition_type", "competition_name", "games", "games_starts", "minutes", "goals_against", "goals_against_per90", "shots_on_target_against", "saves", "save_percentage", "clean_sheets", "clean_sheet_percentage", "wins", "draws", "losses", "penalties_attempted", "penalties_allowed", "penalties_saved", "penalties_missed"}
		n, err := tx.CopyFrom(ctx, pgx.Identifier{"player_goalkeeper_stats"}, cols, pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			r := rows[i]
			return []any{playerID, r.Season, string(r.CompetitionType), r.CompetitionName, r.Games, r.GamesStarts, r.Minutes, r.GoalsAgainst, r.GoalsAgainstPer90, r.ShotsOnTargetAgainst, r.Saves, r.SavePercentage, r.CleanSheets, r.CleanSheetPercentage, r.Wins, r.Draws, r.Losses, r.PenaltiesAttempted, r.PenaltiesAllowed, r.PenaltiesSaved, r.PenaltiesMissed}, nil
		}))
		return int(n), err
	}

	batch := &pgx.Batch{}
	const stmt = `INSERT INTO player_goalkeeper_stats (player_id, season, competition_type, competition_name, games, games_starts, minutes, goals_against, goals_against_per90, shots_on_target_against, saves, save_percentage, clean_sheets, clean_sheet_percentage, wins, draws, losses, penalties_attempted, penalties_allowed, penalties_saved, penalties_missed) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)`
	for _, r := range rows {
		batch.Queue(stmt, playerID, r.Season, string(r.CompetitionType), r.CompetitionName, r.Games, r.GamesStarts, r.Minutes, r.GoalsAgainst, r.GoalsAgainstPer90, r.ShotsOnTargetAgainst, r.Saves, r.SavePercentage, r.CleanSheets, r.CleanSheetPercentage, r.Wins, r.Draws, r.Losses, r.PenaltiesAttempted, r.PenaltiesAllowed, r.PenaltiesSaved, r.PenaltiesMissed)
	}
	return execBatch(ctx, tx, batch, len(rows))
}

func insertMatches(ctx context.Context, tx pgx.Tx, playerID int, rows []domain.PlayerMatch) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if len(rows) >= fullSyncCopyThreshold {
		cols := []string{"player_id", "match_date", "competition", "opponent", "round", "venue", "result", "minutes_played", "goals", "assists", "shots", "shots_on_target", "xg", "xa", "passes_completed", "passes_attempted", "pass_completion_pct", "key_passes", "tackles", "interceptions", "blocks", "touches", "dribbles_completed", "carries", "fouls_committed", "fouls_drawn", "yellow_cards", "red_cards"}
		n, err := tx.CopyFrom(ctx, pgx.Identifier{"player_matches"}, cols, pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			m := rows[i]
			return []any{playerID, m.MatchDate, m.Competition, m.Opponent, m.Round, m.Venue, m.Result, m.MinutesPlayed, m.Goals, m.Assists, m.Shots, m.ShotsOnTarget, m.XG, m.XA, m.PassesCompleted, m.PassesAttempted, m.PassCompletionPct, m.KeyPasses, m.Tackles, m.Interceptions, m.Blocks, m.Touches, m.DribblesCompleted, m.Carries, m.FoulsCommitted, m.FoulsDrawn, m.YellowCards, m.RedCards}, nil
		}))
		return int(n), err
	}

	batch := &pgx.Batch{}
	const stmt = `INSERT INTO player_matches (player_id, match_date, competition, opponent, round, venue, result, minutes_played, goals, assists, shots, shots_on_target, xg, xa, passes_completed, passes_attempted, pass_completion_pct, key_passes, tackles, interceptions, blocks, touches, dribbles_completed, carries, fouls_committed, fouls_drawn, yellow_cards, red_cards) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28)`
	for _, m := range rows {
		batch.Queue(stmt, playerID, m.MatchDate, m.Competition, m.Opponent, m.Round, m.Venue, m.Result, m.MinutesPlayed, m.Goals, m.Assists, m.Shots, m.ShotsOnTarget, m.XG, m.XA, m.PassesCompleted, m.PassesAttempted, m.PassCompletionPct, m.KeyPasses, m.Tackles, m.Interceptions, m.Blocks, m.Touches, m.DribblesCompleted, m.Carries, m.FoulsCommitted, m.FoulsDrawn, m.YellowCards, m.RedCards)
	}
	return execBatch(ctx, tx, batch, len(rows))
}

func execBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch, n int) (int, error) {
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for i := 0; i < n; i++ {
		if _, err := results.Exec(); err != nil {
			return 0, err
		}
	}
	return n, nil
}

// reseedSequences advances each table's id sequence past its current max,
// needed after a CopyFrom bulk load bypasses the sequence entirely.
func reseedSequences(ctx context.Context, tx pgx.Tx) error {
	tables := []string{"player_competition_stats", "player_goalkeeper_stats", "player_matches"}
	for _, t := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 1))`, t, t))
		if err != nil {
			return fmt.Errorf("reseed %s: %w", t, err)
		}
	}
	return nil
}
