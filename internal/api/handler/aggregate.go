package handler

import "github.com/albapepper/footscout/internal/domain"

// MatchAggregate is the summed-over-matches response shape for
// /api/matchlogs/{player_id}/stats.
type MatchAggregate struct {
	PlayerID      int     `json:"player_id"`
	Matches       int     `json:"matches"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	MinutesPlayed int     `json:"minutes_played"`
	Shots         int     `json:"shots"`
	ShotsOnTarget int     `json:"shots_on_target"`
	XG            float64 `json:"xg"`
	XA            float64 `json:"xa"`
	YellowCards   int     `json:"yellow_cards"`
	RedCards      int     `json:"red_cards"`
}

func aggregateMatches(playerID int, matches []domain.PlayerMatch) MatchAggregate {
	agg := MatchAggregate{PlayerID: playerID, Matches: len(matches)}
	for _, m := range matches {
		agg.Goals += m.Goals
		agg.Assists += m.Assists
		agg.MinutesPlayed += m.MinutesPlayed
		agg.Shots += m.Shots
		agg.ShotsOnTarget += m.ShotsOnTarget
		agg.XG += m.XG
		agg.XA += m.XA
		agg.YellowCards += m.YellowCards
		agg.RedCards += m.RedCards
	}
	return agg
}

// seasonVariantKeys returns every season string a competition/goalkeeper stat row could carry
// for the given season, including the NATIONAL_TEAM calendar-year sibling:
// summing a season total folds in the national-team row, never via
// substring match on a year digit.
func seasonVariantKeys(season domain.Season) map[string]struct{} {
	keys := make(map[string]struct{})
	for _, v := range season.Variants() {
		keys[v] = struct{}{}
	}
	keys[season.NationalTeamVariant()] = struct{}{}
	return keys
}
