// Package orchestrator drives one player through fetch,
// parse, merge, and classify, and assembling the resulting dossier.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/albapepper/footscout/internal/classify"
	"github.com/albapepper/footscout/internal/domain"
	"github.com/albapepper/footscout/internal/fetch"
	"github.com/albapepper/footscout/internal/ingesterr"
	"github.com/albapepper/footscout/internal/merge"
	"github.com/albapepper/footscout/internal/parse"
)

// Resolver resolves a player with no known external id to one, by
// searching the source site. Players that already carry an ExternalID
// skip this step entirely.
type Resolver interface {
	Resolve(ctx context.Context, batch *fetch.Batch, name string) (string, error)
}

// Site describes how to build the URLs ScrapePlayer needs for a resolved
// external id. Kept as an interface so orchestrator tests can supply a
// fake without touching the real source site's URL scheme.
type Site interface {
	StatsURL(externalID string) string
	MatchlogURL(externalID string, season domain.Season) string
}

// ScrapePlayer fetches, parses, merges, and classifies one player's stats
// and (for every season in scope) match log, returning an assembled
// dossier. It never partially returns: any fetch, parse, or lookup
// failure aborts with a player-tagged error and no dossier.
func ScrapePlayer(ctx context.Context, batch *fetch.Batch, site Site, resolver Resolver, player domain.Player, scope domain.SeasonScope) (domain.Dossier, error) {
	ref := domain.PlayerRef{ID: player.ID, Name: player.Name}

	externalID, err := resolveExternalID(ctx, batch, site, resolver, player)
	if err != nil {
		return domain.Dossier{}, err
	}

	statsHTML, err := batch.Fetch(ctx, site.StatsURL(externalID))
	if err != nil {
		return domain.Dossier{}, &ingesterr.FetchError{Player: ref, URL: site.StatsURL(externalID), Retryable: true, Err: err}
	}

	tables, err := parse.Parse(statsHTML, parse.AllTableIDs())
	if err != nil {
		return domain.Dossier{}, &ingesterr.ParseError{Player: ref, Page: "stats", Err: err}
	}

	merged := mergeSections(tables)

	var competitionRows []domain.CompetitionStat
	var goalkeeperRows []domain.GoalkeeperStat
	for _, row := range merged {
		if row.IsGoalkeeper {
			goalkeeperRows = append(goalkeeperRows, classify.GoalkeeperStat(row))
		} else {
			competitionRows = append(competitionRows, classify.Stat(row))
		}
	}

	matches, err := fetchMatches(ctx, batch, site, ref, externalID, scope)
	if err != nil {
		return domain.Dossier{}, err
	}

	return domain.Dossier{
		Player:          ref,
		ExternalID:      &externalID,
		CompetitionRows: competitionRows,
		GoalkeeperRows:  goalkeeperRows,
		Matches:         matches,
	}, nil
}

func resolveExternalID(ctx context.Context, batch *fetch.Batch, site Site, resolver Resolver, player domain.Player) (string, error) {
	ref := domain.PlayerRef{ID: player.ID, Name: player.Name}
	if player.ExternalID != nil && *player.ExternalID != "" {
		return *player.ExternalID, nil
	}
	id, err := resolver.Resolve(ctx, batch, player.Name)
	if err != nil {
		return "", &ingesterr.LookupError{Player: ref, Err: err}
	}
	return id, nil
}

// mergeSections pairs up the four table kinds within each section and
// runs them through the merger, one output row per (season, competition).
func mergeSections(tables map[string][]domain.RawRow) []domain.MergedRow {
	sections := []domain.TableSection{
		domain.SectionDomesticLeague,
		domain.SectionDomesticCup,
		domain.SectionEuropeanCup,
		domain.SectionNationalTeam,
	}

	var out []domain.MergedRow
	for _, section := range sections {
		standardRows := tables[parse.TableID(parse.KindStandard, section)]
		shootingByKey := indexBySeasonCompetition(tables[parse.TableID(parse.KindShooting, section)])
		playingTimeByKey := indexBySeasonCompetition(tables[parse.TableID(parse.KindPlayingTime, section)])
		goalkeeperByKey := indexBySeasonCompetition(tables[parse.TableID(parse.KindGoalkeeper, section)])

		for _, std := range standardRows {
			season := std["season"].String()
			competition := std["comp_name"].String()
			key := [2]string{season, competition}
			out = append(out, merge.Merge(
				section, season, competition,
				std,
				shootingByKey[key],
				playingTimeByKey[key],
				goalkeeperByKey[key],
			))
		}
	}
	return out
}

func indexBySeasonCompetition(rows []domain.RawRow) map[[2]string]domain.RawRow {
	idx := make(map[[2]string]domain.RawRow, len(rows))
	for _, r := range rows {
		idx[[2]string{r["season"].String(), r["comp_name"].String()}] = r
	}
	return idx
}

func fetchMatches(ctx context.Context, batch *fetch.Batch, site Site, ref domain.PlayerRef, externalID string, scope domain.SeasonScope) ([]domain.PlayerMatch, error) {
	seen := make(map[[3]string]struct{})
	var matches []domain.PlayerMatch

	for _, season := range scope.Seasons {
		url := site.MatchlogURL(externalID, season)
		html, err := batch.Fetch(ctx, url)
		if err != nil {
			return nil, &ingesterr.FetchError{Player: ref, URL: url, Retryable: true, Err: err}
		}

		rows, err := parse.Parse(html, []string{parse.MatchlogTableID})
		if err != nil {
			return nil, &ingesterr.ParseError{Player: ref, Page: "matchlogs", Err: err}
		}

		for _, row := range rows[parse.MatchlogTableID] {
			m, err := toPlayerMatch(row)
			if err != nil {
				return nil, &ingesterr.ParseError{Player: ref, Page: fmt.Sprintf("matchlogs:%s", season.Canonical()), Err: err}
			}
			key := m.UniqueKey()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			matches = append(matches, m)
		}
	}

	return matches, nil
}
