package parse

import "github.com/albapepper/footscout/internal/domain"

// MatchlogTableID is the single per-season match log table on the source
// site; unlike the stats page it is not split by kind or section.
const MatchlogTableID = "matchlogs_all"

// TableID builds the source site's table id for a given stat kind and
// page section, e.g. "stats_standard_dom_lg".
func TableID(kind domain.TableKind, section domain.TableSection) string {
	return "stats_" + string(kind) + "_" + string(section)
}

// AllTableIDs returns every {kind}×{section} table id the stats page can
// carry, for a single Parse call that pulls them all at once.
func AllTableIDs() []string {
	kinds := []domain.TableKind{
		domain.KindStandard,
		domain.KindShooting,
		domain.KindPlayingTime,
		domain.KindGoalkeeper,
	}
	sections := []domain.TableSection{
		domain.SectionDomesticLeague,
		domain.SectionDomesticCup,
		domain.SectionEuropeanCup,
		domain.SectionNationalTeam,
	}

	ids := make([]string, 0, len(kinds)*len(sections))
	for _, k := range kinds {
		for _, s := range sections {
			ids = append(ids, TableID(k, s))
		}
	}
	return ids
}
