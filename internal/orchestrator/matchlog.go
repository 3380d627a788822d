package orchestrator

import (
	"fmt"
	"time"

	"github.com/albapepper/footscout/internal/domain"
)

// toPlayerMatch converts one parsed match log row into a PlayerMatch. The
// source site reports match_date as YYYY-MM-DD, which is the one field
// this conversion treats as load-bearing enough to fail on; every other
// column degrades gracefully to its zero value when absent.
func toPlayerMatch(row domain.RawRow) (domain.PlayerMatch, error) {
	dateStr := row["date"].String()
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return domain.PlayerMatch{}, fmt.Errorf("parse match date %q: %w", dateStr, err)
	}

	return domain.PlayerMatch{
		MatchDate:         date,
		Competition:       row["comp"].String(),
		Opponent:          row["opponent"].String(),
		Round:             row["round"].String(),
		Venue:             row["venue"].String(),
		Result:            row["result"].String(),
		MinutesPlayed:     row["minutes"].Int(),
		Goals:             row["goals"].Int(),
		Assists:           row["assists"].Int(),
		Shots:             row["shots"].Int(),
		ShotsOnTarget:     row["shots_on_target"].Int(),
		XG:                floatOf(row, "xg"),
		XA:                floatOf(row, "xg_assist"),
		PassesCompleted:   row["passes_completed"].Int(),
		PassesAttempted:   row["passes"].Int(),
		PassCompletionPct: floatOf(row, "passes_pct"),
		KeyPasses:         row["assisted_shots"].Int(),
		Tackles:           row["tackles"].Int(),
		Interceptions:     row["interceptions"].Int(),
		Blocks:            row["blocks"].Int(),
		Touches:           row["touches"].Int(),
		DribblesCompleted: row["take_ons_won"].Int(),
		Carries:           row["carries"].Int(),
		FoulsCommitted:    row["fouls"].Int(),
		FoulsDrawn:        row["fouled"].Int(),
		YellowCards:       row["cards_yellow"].Int(),
		RedCards:          row["cards_red"].Int(),
	}, nil
}

func floatOf(row domain.RawRow, key string) float64 {
	f, _ := row[key].Float()
	return f
}
