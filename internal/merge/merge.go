// Package merge collapses the standard, shooting,
// playing_time, and goalkeeper tables for one (season, competition) pair
// into a single row, ready for classification.
package merge

import "github.com/albapepper/footscout/internal/domain"

// Merge overlays standard, shooting, playing_time, and (when present)
// goalkeeper rows drawn from the same season/competition pair, in that
// fixed order. standard supplies the base record; each later table
// overlays only the fields it owns, and only when it actually reports a
// nonzero/non-null value — an empty shooting cell never zeroes out a
// value standard already supplied.
func Merge(section domain.TableSection, season, competition string, standard, shooting, playingTime, goalkeeper domain.RawRow) domain.MergedRow {
	row := domain.MergedRow{
		Section:         section,
		Season:          season,
		CompetitionName: competition,
	}

	applyStandard(&row, standard)
	applyShooting(&row, shooting)
	applyPlayingTime(&row, playingTime)
	if goalkeeper != nil {
		applyGoalkeeper(&row, goalkeeper)
	}

	return row
}

func applyStandard(row *domain.MergedRow, r domain.RawRow) {
	if r == nil {
		return
	}
	row.Games = r["games"].Int()
	row.GamesStarts = r["games_starts"].Int()
	row.Minutes = r["minutes"].Int()
	row.Goals = r["goals"].Int()
	row.Assists = r["assists"].Int()
	row.XG, _ = r["xg"].Float()
	row.NPXG, _ = r["npxg"].Float()
	row.XA, _ = r["xg_assist"].Float()
	row.YellowCards = r["cards_yellow"].Int()
	row.RedCards = r["cards_red"].Int()
	if v, ok := r["pens_made"]; ok && !v.IsNull {
		n := v.Int()
		row.PenaltyGoals = &n
	}
}

// applyShooting overlays shot-volume and expected-goals fields. A cell
// that is null, absent, or zero leaves the base row's value untouched. xg/npxg overlay the
// standard table's figures rather than merely filling gaps, since the
// shooting table is the more granular source for them.
func applyShooting(row *domain.MergedRow, r domain.RawRow) {
	if r == nil {
		return
	}
	if v, ok := r["shots"]; ok && !v.IsNull && v.Int() > 0 {
		row.Shots = v.Int()
	}
	if v, ok := r["shots_on_target"]; ok && !v.IsNull && v.Int() > 0 {
		row.ShotsOnTarget = v.Int()
	}
	if f, ok := r["xg"].Float(); ok && f > 0 {
		row.XG = f
	}
	if f, ok := r["npxg"].Float(); ok && f > 0 {
		row.NPXG = f
	}
}

// applyPlayingTime overlays minutes/starts when the playing_time table
// reports them, since it is the more authoritative source for those two
// fields on the source site.
func applyPlayingTime(row *domain.MergedRow, r domain.RawRow) {
	if r == nil {
		return
	}
	if v, ok := r["minutes"]; ok && !v.IsNull && v.Int() > 0 {
		row.Minutes = v.Int()
	}
	if v, ok := r["games_starts"]; ok && !v.IsNull && v.Int() > 0 {
		row.GamesStarts = v.Int()
	}
}

// applyGoalkeeper overlays goalkeeper-specific fields, preserving the
// minutes the standard/playing_time tables already established rather
// than letting a goalkeeper table's own (sometimes sparser) minutes
// figure clobber it — the "minutes-preserve rule".
func applyGoalkeeper(row *domain.MergedRow, r domain.RawRow) {
	row.IsGoalkeeper = true
	preservedMinutes := row.Minutes

	row.GoalsAgainst = r["goals_against_gk"].Int()
	row.GoalsAgainstPer90, _ = r["goals_against_per90_gk"].Float()
	row.ShotsOnTargetAgainst = r["shots_on_target_against"].Int()
	row.Saves = r["saves"].Int()
	row.SavePercentage, _ = r["save_pct"].Float()
	row.CleanSheets = r["clean_sheets"].Int()
	row.CleanSheetPercentage, _ = r["clean_sheets_pct"].Float()
	row.Wins = r["games_wins"].Int()
	row.Draws = r["games_draws"].Int()
	row.Losses = r["games_losses"].Int()
	row.PenaltiesAttempted = r["pens_att_gk"].Int()
	row.PenaltiesAllowed = r["pens_allowed"].Int()
	row.PenaltiesSaved = r["pens_saved"].Int()
	row.PenaltiesMissed = r["pens_missed"].Int()

	if preservedMinutes > 0 {
		row.Minutes = preservedMinutes
	} else if v, ok := r["minutes"]; ok && !v.IsNull {
		row.Minutes = v.Int()
	}
}
