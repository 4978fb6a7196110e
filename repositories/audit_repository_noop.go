package repositories

import (
	"context"

	"github.com/slst/slst-backend/models"
)

// NoopAuditRepository discards audit events and has nothing to read back.
// Used when no database is configured, as in one-shot CLI screenings.
type NoopAuditRepository struct{}

func (NoopAuditRepository) CreateScreeningEvent(
	ctx context.Context,
	event models.ScreeningEvent,
	matches []models.MatchEvent,
) error {
	return nil
}

func (NoopAuditRepository) ListScreeningEvents(ctx context.Context, limit int) ([]models.ScreeningEvent, error) {
	return nil, models.ErrAuditTrailNotConfigured
}

func (NoopAuditRepository) ListMatchEvents(ctx context.Context, screeningId string) ([]models.MatchEvent, error) {
	return nil, models.ErrAuditTrailNotConfigured
}
