package usecases

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/slst/slst-backend/models"
)

const (
	defaultAuditEventLimit = 100
	maxAuditEventLimit     = 1000
)

// AuditUsecase is the read side of the audit trail, serving compliance
// review of past screenings.
type AuditUsecase struct {
	trail AuditTrail
}

func NewAuditUsecase(trail AuditTrail) *AuditUsecase {
	return &AuditUsecase{trail: trail}
}

// ListScreeningEvents returns the most recent screening events, newest
// first. A non-positive limit falls back to the default page size.
func (uc *AuditUsecase) ListScreeningEvents(ctx context.Context, limit int) ([]models.ScreeningEvent, error) {
	if limit <= 0 {
		limit = defaultAuditEventLimit
	}
	if limit > maxAuditEventLimit {
		return nil, errors.Wrapf(models.BadParameterError,
			"limit %d exceeds the maximum of %d", limit, maxAuditEventLimit)
	}

	return uc.trail.ListScreeningEvents(ctx, limit)
}

// ListMatchEvents returns the persisted matches of one screening.
func (uc *AuditUsecase) ListMatchEvents(ctx context.Context, screeningId string) ([]models.MatchEvent, error) {
	if strings.TrimSpace(screeningId) == "" {
		return nil, errors.Wrap(models.BadParameterError, "screening id is required")
	}

	return uc.trail.ListMatchEvents(ctx, screeningId)
}
