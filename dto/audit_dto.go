package dto

import (
	"time"

	"github.com/slst/slst-backend/models"
)

type APIScreeningEvent struct {
	Id          string    `json:"id"`
	ScreeningId string    `json:"screening_id"`
	Query       string    `json:"query"`
	Decision    string    `json:"decision"`
	RiskLevel   string    `json:"risk_level"`
	MatchCount  int       `json:"match_count"`
	FilteredOut int       `json:"filtered_out"`
	DurationMs  float64   `json:"duration_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

type APIMatchEvent struct {
	Id          string    `json:"id"`
	ScreeningId string    `json:"screening_id"`
	TargetName  string    `json:"target_name"`
	Source      string    `json:"source"`
	MatchScore  float64   `json:"match_score"`
	RiskScore   float64   `json:"risk_score"`
	MatchType   string    `json:"match_type"`
	CreatedAt   time.Time `json:"created_at"`
}

func AdaptAPIScreeningEvent(event models.ScreeningEvent) APIScreeningEvent {
	return APIScreeningEvent{
		Id:          event.Id.String(),
		ScreeningId: event.ScreeningId,
		Query:       event.Query,
		Decision:    event.Decision.String(),
		RiskLevel:   event.RiskLevel.String(),
		MatchCount:  event.MatchCount,
		FilteredOut: event.FilteredOut,
		DurationMs:  event.DurationMs,
		CreatedAt:   event.CreatedAt,
	}
}

func AdaptAPIMatchEvent(match models.MatchEvent) APIMatchEvent {
	return APIMatchEvent{
		Id:          match.Id.String(),
		ScreeningId: match.ScreeningId,
		TargetName:  match.TargetName,
		Source:      match.Source.String(),
		MatchScore:  match.MatchScore,
		RiskScore:   match.RiskScore,
		MatchType:   match.MatchType.String(),
		CreatedAt:   match.CreatedAt,
	}
}
