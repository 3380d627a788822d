package domain

import (
	"strconv"
	"time"
)

// Player is a tracked player profile.
type Player struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Team         string    `json:"team"`
	League       string    `json:"league"`
	Position     string    `json:"position"`
	Nationality  string    `json:"nationality"`
	IsGoalkeeper bool      `json:"is_goalkeeper"`
	ExternalID   *string   `json:"external_id"`
	LastUpdated  time.Time `json:"last_updated"`
}

// PlayerRef identifies a player for error attribution without requiring the
// full record, so errors can propagate with the player identity attached.
type PlayerRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CompetitionStat is one player's stat line for a (season, competition)
// pair. Applies only to non-goalkeepers.
type CompetitionStat struct {
	ID              int             `json:"id"`
	PlayerID        int             `json:"player_id"`
	Season          string          `json:"season"`
	CompetitionType CompetitionType `json:"competition_type"`
	CompetitionName string          `json:"competition_name"`
	Games           int             `json:"games"`
	GamesStarts     int             `json:"games_starts"`
	Minutes         int             `json:"minutes"`
	Goals           int             `json:"goals"`
	Assists         int             `json:"assists"`
	XG              float64         `json:"xg"`
	NPXG            float64         `json:"npxg"`
	XA              float64         `json:"xa"`
	PenaltyGoals    *int            `json:"penalty_goals"`
	Shots           int             `json:"shots"`
	ShotsOnTarget   int             `json:"shots_on_target"`
	YellowCards     int             `json:"yellow_cards"`
	RedCards        int             `json:"red_cards"`
}

// GoalkeeperStat is the goalkeeper-specific analogue of CompetitionStat.
// Applies only to goalkeepers.
type GoalkeeperStat struct {
	ID                   int             `json:"id"`
	PlayerID             int             `json:"player_id"`
	Season               string          `json:"season"`
	CompetitionType      CompetitionType `json:"competition_type"`
	CompetitionName      string          `json:"competition_name"`
	Games                int             `json:"games"`
	GamesStarts          int             `json:"games_starts"`
	Minutes              int             `json:"minutes"`
	GoalsAgainst         int             `json:"goals_against"`
	GoalsAgainstPer90    float64         `json:"goals_against_per90"`
	ShotsOnTargetAgainst int             `json:"shots_on_target_against"`
	Saves                int             `json:"saves"`
	SavePercentage       float64         `json:"save_percentage"`
	CleanSheets          int             `json:"clean_sheets"`
	CleanSheetPercentage float64         `json:"clean_sheet_percentage"`
	Wins                 int             `json:"wins"`
	Draws                int             `json:"draws"`
	Losses               int             `json:"losses"`
	PenaltiesAttempted   int             `json:"penalties_attempted"`
	PenaltiesAllowed     int             `json:"penalties_allowed"`
	PenaltiesSaved       int             `json:"penalties_saved"`
	PenaltiesMissed      int             `json:"penalties_missed"`
}

// PlayerMatch is a single match-log row for one player.
type PlayerMatch struct {
	ID                int       `json:"id"`
	PlayerID          int       `json:"player_id"`
	MatchDate         time.Time `json:"match_date"`
	Competition       string    `json:"competition"`
	Opponent          string    `json:"opponent"`
	Round             string    `json:"round"`
	Venue             string    `json:"venue"` // "Home" | "Away"
	Result            string    `json:"result"`
	MinutesPlayed     int       `json:"minutes_played"`
	Goals             int       `json:"goals"`
	Assists           int       `json:"assists"`
	Shots             int       `json:"shots"`
	ShotsOnTarget     int       `json:"shots_on_target"`
	XG                float64   `json:"xg"`
	XA                float64   `json:"xa"`
	PassesCompleted   int       `json:"passes_completed"`
	PassesAttempted   int       `json:"passes_attempted"`
	PassCompletionPct float64   `json:"pass_completion_pct"`
	KeyPasses         int       `json:"key_passes"`
	Tackles           int       `json:"tackles"`
	Interceptions     int       `json:"interceptions"`
	Blocks            int       `json:"blocks"`
	Touches           int       `json:"touches"`
	DribblesCompleted int       `json:"dribbles_completed"`
	Carries           int       `json:"carries"`
	FoulsCommitted    int       `json:"fouls_committed"`
	FoulsDrawn        int       `json:"fouls_drawn"`
	YellowCards       int       `json:"yellow_cards"`
	RedCards          int       `json:"red_cards"`
}

// UniqueKey returns the (match_date, competition, opponent) tuple used for
// in-memory deduplication before insert.
func (m PlayerMatch) UniqueKey() [3]string {
	return [3]string{m.MatchDate.Format("2006-01-02"), m.Competition, m.Opponent}
}

// UniqueKey returns the (season, competition_type, competition_name) tuple
// used for in-memory dedup/uniqueness.
func (s CompetitionStat) UniqueKey() [2]string {
	return [2]string{s.Season, string(s.CompetitionType) + "|" + s.CompetitionName}
}

// UniqueKey mirrors CompetitionStat.UniqueKey for goalkeeper rows.
func (s GoalkeeperStat) UniqueKey() [2]string {
	return [2]string{s.Season, string(s.CompetitionType) + "|" + s.CompetitionName}
}

// JobKind distinguishes the scheduler's sync job kinds.
type JobKind string

const (
	JobSyncStats     JobKind = "stats"
	JobSyncMatchlogs JobKind = "matchlogs"
	JobSyncFull      JobKind = "full"
)

// SyncReport is ephemeral, emitted to the notifier, never persisted.
type SyncReport struct {
	Kind      JobKind         `json:"kind"`
	Start     time.Time       `json:"start"`
	End       time.Time       `json:"end"`
	Attempted int             `json:"attempted"`
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
	Failures  []PlayerFailure `json:"failures,omitempty"`
}

// PlayerFailure records why a single player's sync failed within a job.
type PlayerFailure struct {
	Player PlayerRef `json:"player"`
	Reason string    `json:"reason"`
}

// Summary returns a short human-readable line of the report's kind,
// counts, and duration.
func (r SyncReport) Summary() string {
	dur := r.End.Sub(r.Start).Round(time.Second)
	return "kind=" + string(r.Kind) +
		" attempted=" + strconv.Itoa(r.Attempted) +
		" succeeded=" + strconv.Itoa(r.Succeeded) +
		" failed=" + strconv.Itoa(r.Failed) +
		" dur=" + dur.String()
}
