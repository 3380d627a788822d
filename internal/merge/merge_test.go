package merge

import (
	"testing"

	"github.com/albapepper/footscout/internal/domain"
)

func cell(i int64) domain.CellValue { return domain.CellValue{IsInt: true, I: i} }
func fcell(f float64) domain.CellValue { return domain.CellValue{IsFlt: true, F: f} }

func TestMergeStandardOnly(t *testing.T) {
	standard := domain.RawRow{
		"games":        cell(10),
		"games_starts": cell(9),
		"minutes":      cell(800),
		"goals":        cell(4),
		"assists":      cell(2),
		"pens_made":    cell(1),
	}
	row := Merge(domain.SectionDomesticLeague, "2025-2026", "Bundesliga", standard, nil, nil, nil)

	if row.Games != 10 || row.GamesStarts != 9 || row.Minutes != 800 || row.Goals != 4 || row.Assists != 2 {
		t.Fatalf("unexpected merged row: %+v", row)
	}
	if row.PenaltyGoals == nil || *row.PenaltyGoals != 1 {
		t.Fatalf("expected penalty goals 1, got %v", row.PenaltyGoals)
	}
}

func TestMergeShootingDoesNotZeroBase(t *testing.T) {
	standard := domain.RawRow{"games": cell(10), "minutes": cell(800)}
	// shooting table reports nothing for this row
	row := Merge(domain.SectionDomesticLeague, "2025-2026", "Bundesliga", standard, domain.RawRow{}, nil, nil)
	if row.Shots != 0 || row.ShotsOnTarget != 0 {
		t.Fatalf("expected zero shots with no shooting data, got %+v", row)
	}

	shooting := domain.RawRow{"shots": cell(15), "shots_on_target": cell(6)}
	row2 := Merge(domain.SectionDomesticLeague, "2025-2026", "Bundesliga", standard, shooting, nil, nil)
	if row2.Shots != 15 || row2.ShotsOnTarget != 6 {
		t.Fatalf("expected shooting overlay applied, got %+v", row2)
	}
	if row2.Minutes != 800 {
		t.Fatalf("shooting overlay must not clobber minutes from standard, got %d", row2.Minutes)
	}
}

func TestMergePlayingTimeOverlay(t *testing.T) {
	standard := domain.RawRow{"minutes": cell(0), "games_starts": cell(0)}
	playingTime := domain.RawRow{"minutes": cell(900), "games_starts": cell(10)}
	row := Merge(domain.SectionDomesticLeague, "2025-2026", "Bundesliga", standard, nil, playingTime, nil)
	if row.Minutes != 900 || row.GamesStarts != 10 {
		t.Fatalf("expected playing_time overlay to win, got %+v", row)
	}
}

func TestMergeGoalkeeperPreservesMinutes(t *testing.T) {
	standard := domain.RawRow{"minutes": cell(900)}
	goalkeeper := domain.RawRow{
		"minutes":       cell(100), // sparser, must NOT clobber the 900 already set
		"saves":         cell(40),
		"clean_sheets":  cell(8),
		"goals_against_gk": cell(12),
	}
	row := Merge(domain.SectionDomesticLeague, "2025-2026", "Bundesliga", standard, nil, nil, goalkeeper)
	if !row.IsGoalkeeper {
		t.Fatal("expected IsGoalkeeper true")
	}
	if row.Minutes != 900 {
		t.Fatalf("minutes-preserve rule violated: got %d, want 900", row.Minutes)
	}
	if row.Saves != 40 || row.CleanSheets != 8 || row.GoalsAgainst != 12 {
		t.Fatalf("goalkeeper fields not applied: %+v", row)
	}
}

func TestMergeGoalkeeperFallsBackToOwnMinutesWhenNonePreserved(t *testing.T) {
	goalkeeper := domain.RawRow{"minutes": cell(450), "saves": cell(10)}
	row := Merge(domain.SectionDomesticLeague, "2025-2026", "Bundesliga", nil, nil, nil, goalkeeper)
	if row.Minutes != 450 {
		t.Fatalf("expected goalkeeper's own minutes used when nothing preserved, got %d", row.Minutes)
	}
}

func TestMergeShootingOverlaysXGOverStandard(t *testing.T) {
	standard := domain.RawRow{"xg": fcell(4.5), "npxg": fcell(3.2)}
	shooting := domain.RawRow{"xg": fcell(5.1), "npxg": fcell(4.0)}
	row := Merge(domain.SectionDomesticLeague, "2025-2026", "Bundesliga", standard, shooting, nil, nil)
	if row.XG != 5.1 {
		t.Fatalf("expected shooting table's xg to win over standard, got %v", row.XG)
	}
	if row.NPXG != 4.0 {
		t.Fatalf("expected shooting table's npxg to win over standard, got %v", row.NPXG)
	}
}

func TestMergeXGFields(t *testing.T) {
	standard := domain.RawRow{"xg": fcell(4.5), "npxg": fcell(3.2), "xg_assist": fcell(1.1)}
	row := Merge(domain.SectionDomesticLeague, "2025-2026", "Bundesliga", standard, nil, nil, nil)
	if row.XG != 4.5 || row.NPXG != 3.2 || row.XA != 1.1 {
		t.Fatalf("unexpected xg fields: %+v", row)
	}
}
