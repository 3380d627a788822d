package domain

// CellValue is a small tagged union for a parsed table cell. The parser
// is the earliest point typed values surface, rather than deferring
// type decisions to whatever reads the row later.
type CellValue struct {
	IsNull bool
	IsInt  bool
	IsFlt  bool
	I      int64
	F      float64
	S      string
}

// Float returns the numeric value of the cell, treating ints and floats
// uniformly; null or non-numeric cells return (0, false).
func (c CellValue) Float() (float64, bool) {
	switch {
	case c.IsNull:
		return 0, false
	case c.IsInt:
		return float64(c.I), true
	case c.IsFlt:
		return c.F, true
	default:
		return 0, false
	}
}

// Int truncates Float() to an int, defaulting to 0 when not numeric.
func (c CellValue) Int() int {
	f, ok := c.Float()
	if !ok {
		return 0
	}
	return int(f)
}

// String returns the raw string form regardless of cell kind.
func (c CellValue) String() string {
	if c.IsNull {
		return ""
	}
	return c.S
}

// RawRow is one parsed table row: column key -> typed cell.
type RawRow map[string]CellValue

// TableSection identifies which page section a table was scraped from —
// the fixed section identifiers the source site uses, and the classifier's
// primary input.
type TableSection string

const (
	SectionDomesticLeague TableSection = "dom_lg"
	SectionDomesticCup    TableSection = "dom_cup"
	SectionEuropeanCup    TableSection = "cup_intl"
	SectionNationalTeam   TableSection = "nat_tm"
)

// TableKind identifies which analytic table a row came from.
type TableKind string

const (
	KindStandard    TableKind = "standard"
	KindShooting    TableKind = "shooting"
	KindPlayingTime TableKind = "playing_time"
	KindGoalkeeper  TableKind = "goalkeeper"
)

// MergedRow is the merge step's output: one row per (season, competition),
// not yet classified into a CompetitionType (that classification depends on
// the section the tables were drawn from).
type MergedRow struct {
	Section         TableSection
	Season          string // raw, not yet normalized
	CompetitionName string

	Games         int
	GamesStarts   int
	Minutes       int
	Goals         int
	Assists       int
	XG            float64
	NPXG          float64
	XA            float64
	PenaltyGoals  *int
	Shots         int
	ShotsOnTarget int
	YellowCards   int
	RedCards      int

	// Goalkeeper-specific, populated only when the goalkeeper table
	// contributed to this row.
	IsGoalkeeper          bool
	GoalsAgainst          int
	GoalsAgainstPer90     float64
	ShotsOnTargetAgainst  int
	Saves                 int
	SavePercentage        float64
	CleanSheets           int
	CleanSheetPercentage  float64
	Wins                  int
	Draws                 int
	Losses                int
	PenaltiesAttempted    int
	PenaltiesAllowed      int
	PenaltiesSaved        int
	PenaltiesMissed       int
}
