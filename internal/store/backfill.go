package store

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/albapepper/footscout/internal/classify"
	"github.com/albapepper/footscout/internal/domain"
)

// RunBackfill repairs stat rows whose minutes is still zero despite games
// played, by summing the minutes of matching match rows. It runs in
// its own transaction since a failure here should never undo the write
// that already committed the dossier.
func RunBackfill(ctx context.Context, pool *Pool, player domain.Player) (int, error) {
	var repaired int
	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		n, err := backfillTable(ctx, tx, "player_competition_stats", player.ID)
		if err != nil {
			return err
		}
		repaired += n

		n, err = backfillTable(ctx, tx, "player_goalkeeper_stats", player.ID)
		if err != nil {
			return err
		}
		repaired += n
		return nil
	})
	return repaired, err
}

type zeroMinuteRow struct {
	id              int
	season          string
	competitionName string
}

func backfillTable(ctx context.Context, tx pgx.Tx, table string, playerID int) (int, error) {
	rows, err := tx.Query(ctx, `SELECT id, season, competition_name FROM `+table+` WHERE player_id = $1 AND minutes = 0 AND games > 0`, playerID)
	if err != nil {
		return 0, err
	}

	var candidates []zeroMinuteRow
	for rows.Next() {
		var r zeroMinuteRow
		if err := rows.Scan(&r.id, &r.season, &r.competitionName); err != nil {
			rows.Close()
			return 0, err
		}
		candidates = append(candidates, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	repaired := 0
	for _, r := range candidates {
		sum, err := sumMatchMinutes(ctx, tx, playerID, r.season, r.competitionName)
		if err != nil {
			return repaired, err
		}
		if sum <= 0 {
			continue
		}
		if _, err := tx.Exec(ctx, `UPDATE `+table+` SET minutes = $1 WHERE id = $2`, sum, r.id); err != nil {
			return repaired, err
		}
		repaired++
	}
	return repaired, nil
}

// sumMatchMinutes sums minutes_played across match rows in the row's
// season window whose competition label resolves (via the same
// short-label mapping the classifier uses, falling back to a
// case-insensitive substring match) to the stat row's competition name.
func sumMatchMinutes(ctx context.Context, tx pgx.Tx, playerID int, season, competitionName string) (int, error) {
	window, err := domain.ParseCanonicalSeason(season)
	if err != nil {
		return 0, err
	}

	rows, err := tx.Query(ctx, `SELECT competition, minutes_played FROM player_matches WHERE player_id = $1 AND match_date BETWEEN $2 AND $3`, playerID, window.Start, window.End)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	target := strings.ToLower(competitionName)
	sum := 0
	for rows.Next() {
		var comp string
		var minutes int
		if err := rows.Scan(&comp, &minutes); err != nil {
			return 0, err
		}
		if strings.ToLower(classify.CompetitionName(comp)) == target || strings.Contains(target, strings.ToLower(comp)) {
			sum += minutes
		}
	}
	return sum, rows.Err()
}
