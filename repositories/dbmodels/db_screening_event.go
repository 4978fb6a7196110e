package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/slst/slst-backend/models"
)

const TABLE_SCREENING_EVENTS = "screening_events"

type DBScreeningEvent struct {
	Id          uuid.UUID `db:"id"`
	ScreeningId string    `db:"screening_id"`
	Query       string    `db:"query"`
	Decision    string    `db:"decision"`
	RiskLevel   string    `db:"risk_level"`
	MatchCount  int       `db:"match_count"`
	FilteredOut int       `db:"filtered_out"`
	DurationMs  float64   `db:"duration_ms"`
	CreatedAt   time.Time `db:"created_at"`
}

var SelectScreeningEventColumns = []string{
	"id",
	"screening_id",
	"query",
	"decision",
	"risk_level",
	"match_count",
	"filtered_out",
	"duration_ms",
	"created_at",
}

func AdaptScreeningEvent(db DBScreeningEvent) (models.ScreeningEvent, error) {
	return models.ScreeningEvent{
		Id:          db.Id,
		ScreeningId: db.ScreeningId,
		Query:       db.Query,
		Decision:    models.DecisionActionFrom(db.Decision),
		RiskLevel:   models.RiskLevelFrom(db.RiskLevel),
		MatchCount:  db.MatchCount,
		FilteredOut: db.FilteredOut,
		DurationMs:  db.DurationMs,
		CreatedAt:   db.CreatedAt,
	}, nil
}
