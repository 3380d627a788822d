// Package classify turns a merged row plus the page
// section it was scraped from into a fully typed stat record, including
// season normalization and competition-type/name assignment.
package classify

import (
	"strings"

	"github.com/albapepper/footscout/internal/domain"
)

// CompetitionType maps a page section directly to one of the closed-set
// competition types; section is the single input the page parser already
// records, so no guessing from the competition label itself is needed.
func CompetitionType(section domain.TableSection) domain.CompetitionType {
	switch section {
	case domain.SectionDomesticLeague:
		return domain.League
	case domain.SectionDomesticCup:
		return domain.DomesticCup
	case domain.SectionEuropeanCup:
		return domain.EuropeanCup
	case domain.SectionNationalTeam:
		return domain.NationalTeam
	default:
		return domain.League
	}
}

// Season normalizes the raw season label from a merged row into its
// canonical string form. National-team rows use the bare calendar year
// the source site already reports; club rows get the slash-to-dash
// normalization.
func Season(section domain.TableSection, rawSeason string) string {
	if section == domain.SectionNationalTeam {
		return strings.TrimSpace(rawSeason)
	}
	return domain.ParseSeasonString(rawSeason)
}

// CompetitionName resolves the source site's often-abbreviated
// competition label into the full name used for display and grouping,
// falling back to the raw label (trimmed) when no mapping applies.
func CompetitionName(raw string) string {
	raw = strings.TrimSpace(raw)
	if full, ok := competitionNames[raw]; ok {
		return full
	}
	lower := strings.ToLower(raw)
	for short, full := range competitionNames {
		if strings.Contains(lower, strings.ToLower(short)) {
			return full
		}
	}
	return raw
}

// Stat classifies one merged row into a CompetitionStat, leaving
// PlayerID/ID for the caller to fill in.
func Stat(row domain.MergedRow) domain.CompetitionStat {
	return domain.CompetitionStat{
		Season:          Season(row.Section, row.Season),
		CompetitionType: CompetitionType(row.Section),
		CompetitionName: CompetitionName(row.CompetitionName),
		Games:           row.Games,
		GamesStarts:     row.GamesStarts,
		Minutes:         row.Minutes,
		Goals:           row.Goals,
		Assists:         row.Assists,
		XG:              row.XG,
		NPXG:            row.NPXG,
		XA:              row.XA,
		PenaltyGoals:    row.PenaltyGoals,
		Shots:           row.Shots,
		ShotsOnTarget:   row.ShotsOnTarget,
		YellowCards:     row.YellowCards,
		RedCards:        row.RedCards,
	}
}

// GoalkeeperStat classifies one merged goalkeeper row.
func GoalkeeperStat(row domain.MergedRow) domain.GoalkeeperStat {
	return domain.GoalkeeperStat{
		Season:               Season(row.Section, row.Season),
		CompetitionType:      CompetitionType(row.Section),
		CompetitionName:      CompetitionName(row.CompetitionName),
		Games:                row.Games,
		GamesStarts:          row.GamesStarts,
		Minutes:              row.Minutes,
		GoalsAgainst:         row.GoalsAgainst,
		GoalsAgainstPer90:    row.GoalsAgainstPer90,
		ShotsOnTargetAgainst: row.ShotsOnTargetAgainst,
		Saves:                row.Saves,
		SavePercentage:       row.SavePercentage,
		CleanSheets:          row.CleanSheets,
		CleanSheetPercentage: row.CleanSheetPercentage,
		Wins:                 row.Wins,
		Draws:                row.Draws,
		Losses:               row.Losses,
		PenaltiesAttempted:   row.PenaltiesAttempted,
		PenaltiesAllowed:     row.PenaltiesAllowed,
		PenaltiesSaved:       row.PenaltiesSaved,
		PenaltiesMissed:      row.PenaltiesMissed,
	}
}
