package handler

import "github.com/albapepper/footscout/internal/domain"

// coercePenaltyGoalsStats returns a copy of rows with a nil PenaltyGoals
// coerced to 0, per the API's penalty-goal semantics: the column is
// nullable in storage, but responses never surface null unless the whole
// row is missing.
func coercePenaltyGoalsStats(rows []domain.CompetitionStat) []domain.CompetitionStat {
	out := make([]domain.CompetitionStat, len(rows))
	for i, s := range rows {
		if s.PenaltyGoals == nil {
			zero := 0
			s.PenaltyGoals = &zero
		}
		out[i] = s
	}
	return out
}
