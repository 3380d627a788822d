package domain

// SeasonScope is the bounded set of seasons a single sync is permitted to
// touch. Incremental syncs carry exactly one season; full syncs carry a
// fixed number of recent seasons (see SeasonsBack), not every season the
// source exposes. IncludeStats/
// IncludeMatches narrow a sync further still — a matchlog-only job
// refreshes match rows without touching competition/goalkeeper stats.
type SeasonScope struct {
	Seasons        []Season
	Full           bool
	IncludeStats   bool
	IncludeMatches bool
}

// IncrementalScope returns a scope bounded to the current season, touching
// both stats and matches.
func IncrementalScope(current Season) SeasonScope {
	return SeasonScope{Seasons: []Season{current}, IncludeStats: true, IncludeMatches: true}
}

// FullScope returns a scope covering every season supplied, touching both
// stats and matches.
func FullScope(seasons []Season) SeasonScope {
	return SeasonScope{Seasons: seasons, Full: true, IncludeStats: true, IncludeMatches: true}
}

// MatchlogOnlyScope returns a scope bounded to the current season that
// only touches match rows, leaving existing stat rows untouched.
func MatchlogOnlyScope(current Season) SeasonScope {
	return SeasonScope{Seasons: []Season{current}, IncludeMatches: true}
}

// Dossier is the in-memory artifact produced by the orchestrator for
// one player: not yet persisted, contains everything the writer needs.
type Dossier struct {
	Player          PlayerRef
	ExternalID      *string
	CompetitionRows []CompetitionStat
	GoalkeeperRows  []GoalkeeperStat
	Matches         []PlayerMatch
}

// WriteReport summarizes what the reconciliation writer actually did.
type WriteReport struct {
	PlayerID        int
	StatRowsDeleted int
	StatRowsWritten int
	MatchesDeleted  int
	MatchesWritten  int
	BackfilledRows  int
}
