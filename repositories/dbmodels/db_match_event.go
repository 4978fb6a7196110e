package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/slst/slst-backend/models"
)

const TABLE_SCREENING_MATCHES = "screening_matches"

type DBMatchEvent struct {
	Id          uuid.UUID `db:"id"`
	ScreeningId string    `db:"screening_id"`
	TargetName  string    `db:"target_name"`
	Source      string    `db:"source"`
	MatchScore  float64   `db:"match_score"`
	RiskScore   float64   `db:"risk_score"`
	MatchType   string    `db:"match_type"`
	CreatedAt   time.Time `db:"created_at"`
}

var SelectMatchEventColumns = []string{
	"id",
	"screening_id",
	"target_name",
	"source",
	"match_score",
	"risk_score",
	"match_type",
	"created_at",
}

func AdaptMatchEvent(db DBMatchEvent) (models.MatchEvent, error) {
	return models.MatchEvent{
		Id:          db.Id,
		ScreeningId: db.ScreeningId,
		TargetName:  db.TargetName,
		Source:      models.ListSourceFrom(db.Source),
		MatchScore:  db.MatchScore,
		RiskScore:   db.RiskScore,
		MatchType:   models.MatchTypeFrom(db.MatchType),
		CreatedAt:   db.CreatedAt,
	}, nil
}
