package classify

import (
	"testing"

	"github.com/albapepper/footscout/internal/domain"
)

func TestCompetitionType(t *testing.T) {
	cases := map[domain.TableSection]domain.CompetitionType{
		domain.SectionDomesticLeague: domain.League,
		domain.SectionDomesticCup:    domain.DomesticCup,
		domain.SectionEuropeanCup:    domain.EuropeanCup,
		domain.SectionNationalTeam:   domain.NationalTeam,
	}
	for section, want := range cases {
		if got := CompetitionType(section); got != want {
			t.Fatalf("CompetitionType(%s) = %s, want %s", section, got, want)
		}
	}
}

func TestSeasonNormalization(t *testing.T) {
	if got := Season(domain.SectionDomesticLeague, "2025/2026"); got != "2025-2026" {
		t.Fatalf("club season = %q, want 2025-2026", got)
	}
	if got := Season(domain.SectionNationalTeam, " 2025 "); got != "2025" {
		t.Fatalf("national team season = %q, want 2025", got)
	}
}

func TestCompetitionNameExactMatch(t *testing.T) {
	if got := CompetitionName("Bundesliga"); got != "Bundesliga" {
		t.Fatalf("CompetitionName(Bundesliga) = %q", got)
	}
}

func TestCompetitionNameSubstringFallback(t *testing.T) {
	// Champions League qualifying labels fold into Europa League.
	if got := CompetitionName("CL Qual Rd 3"); got != "UEFA Europa League" {
		t.Fatalf("CompetitionName(CL Qual Rd 3) = %q, want UEFA Europa League", got)
	}
}

func TestCompetitionNameNoMapping(t *testing.T) {
	if got := CompetitionName("Some Obscure Cup"); got != "Some Obscure Cup" {
		t.Fatalf("CompetitionName fallback = %q, want raw label preserved", got)
	}
}

func TestStatClassification(t *testing.T) {
	row := domain.MergedRow{
		Section:         domain.SectionDomesticLeague,
		Season:          "2025/2026",
		CompetitionName: "Bundesliga",
		Games:           10,
		Goals:           5,
	}
	stat := Stat(row)
	if stat.Season != "2025-2026" {
		t.Fatalf("Stat.Season = %q, want 2025-2026", stat.Season)
	}
	if stat.CompetitionType != domain.League {
		t.Fatalf("Stat.CompetitionType = %s, want LEAGUE", stat.CompetitionType)
	}
	if stat.Games != 10 || stat.Goals != 5 {
		t.Fatalf("Stat numeric fields not carried through: %+v", stat)
	}
}

func TestGoalkeeperStatClassification(t *testing.T) {
	row := domain.MergedRow{
		Section:      domain.SectionDomesticLeague,
		Season:       "2025",
		Saves:        40,
		CleanSheets:  8,
		GoalsAgainst: 12,
	}
	stat := GoalkeeperStat(row)
	if stat.Saves != 40 || stat.CleanSheets != 8 || stat.GoalsAgainst != 12 {
		t.Fatalf("GoalkeeperStat numeric fields not carried through: %+v", stat)
	}
}
