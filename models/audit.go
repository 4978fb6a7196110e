package models

import (
	"time"

	"github.com/google/uuid"
)

// ScreeningEvent is the append-only audit record of one screening call.
type ScreeningEvent struct {
	Id           uuid.UUID
	ScreeningId  string
	Query        string
	Decision     DecisionAction
	RiskLevel    RiskLevel
	MatchCount   int
	FilteredOut  int
	DurationMs   float64
	CreatedAt    time.Time
}

// MatchEvent is the audit record of one surviving match within a screening.
type MatchEvent struct {
	Id          uuid.UUID
	ScreeningId string
	TargetName  string
	Source      ListSource
	MatchScore  float64
	RiskScore   float64
	MatchType   MatchType
	CreatedAt   time.Time
}

// NewScreeningEvent flattens a screening result into its audit records.
func NewScreeningEvent(result ScreeningResult, at time.Time) (ScreeningEvent, []MatchEvent) {
	event := ScreeningEvent{
		Id:          uuid.New(),
		ScreeningId: result.Id,
		Query:       result.Query,
		Decision:    result.Decision.Action,
		RiskLevel:   result.Summary.HighestRisk,
		MatchCount:  len(result.Matches),
		FilteredOut: result.FilteredCount,
		DurationMs:  float64(result.Duration.Microseconds()) / 1000,
		CreatedAt:   at,
	}

	matches := make([]MatchEvent, len(result.Matches))
	for i, match := range result.Matches {
		matches[i] = MatchEvent{
			Id:          uuid.New(),
			ScreeningId: result.Id,
			TargetName:  match.TargetName,
			Source:      match.Source,
			MatchScore:  match.Score,
			RiskScore:   match.RiskScore,
			MatchType:   match.MatchType,
			CreatedAt:   at,
		}
	}

	return event, matches
}
