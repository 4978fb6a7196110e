package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/slst/slst-backend/models"
	"github.com/slst/slst-backend/pure_utils"
	"github.com/slst/slst-backend/repositories/dbmodels"
)

// AuditRepository persists the append-only screening audit trail.
type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

func (repo *AuditRepository) CreateScreeningEvent(
	ctx context.Context,
	event models.ScreeningEvent,
	matches []models.MatchEvent,
) error {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_SCREENING_EVENTS).
		Columns(dbmodels.SelectScreeningEventColumns...).
		Values(
			event.Id,
			event.ScreeningId,
			event.Query,
			event.Decision.String(),
			event.RiskLevel.String(),
			event.MatchCount,
			event.FilteredOut,
			event.DurationMs,
			event.CreatedAt,
		)

	sql, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, "could not build screening event insert")
	}
	if _, err := repo.pool.Exec(ctx, sql, args...); err != nil {
		return errors.Wrap(err, "could not insert screening event")
	}

	if len(matches) == 0 {
		return nil
	}

	matchQuery := NewQueryBuilder().
		Insert(dbmodels.TABLE_SCREENING_MATCHES).
		Columns(dbmodels.SelectMatchEventColumns...)
	for _, match := range matches {
		matchQuery = matchQuery.Values(
			match.Id,
			match.ScreeningId,
			match.TargetName,
			match.Source.String(),
			match.MatchScore,
			match.RiskScore,
			match.MatchType.String(),
			match.CreatedAt,
		)
	}

	sql, args, err = matchQuery.ToSql()
	if err != nil {
		return errors.Wrap(err, "could not build match event insert")
	}
	if _, err := repo.pool.Exec(ctx, sql, args...); err != nil {
		return errors.Wrap(err, "could not insert match events")
	}
	return nil
}

// ListScreeningEvents returns the most recent audit records, newest first.
func (repo *AuditRepository) ListScreeningEvents(ctx context.Context, limit int) ([]models.ScreeningEvent, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectScreeningEventColumns...).
		From(dbmodels.TABLE_SCREENING_EVENTS).
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "could not build screening event query")
	}

	rows, err := repo.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "could not list screening events")
	}
	dbEvents, err := pgx.CollectRows(rows, pgx.RowToStructByName[dbmodels.DBScreeningEvent])
	if err != nil {
		return nil, errors.Wrap(err, "could not scan screening events")
	}

	return pure_utils.MapErr(dbEvents, dbmodels.AdaptScreeningEvent)
}

// ListMatchEvents returns the match records persisted for one screening, in
// insertion order.
func (repo *AuditRepository) ListMatchEvents(ctx context.Context, screeningId string) ([]models.MatchEvent, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectMatchEventColumns...).
		From(dbmodels.TABLE_SCREENING_MATCHES).
		Where(squirrel.Eq{"screening_id": screeningId}).
		OrderBy("created_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "could not build match event query")
	}

	rows, err := repo.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "could not list match events")
	}
	dbMatches, err := pgx.CollectRows(rows, pgx.RowToStructByName[dbmodels.DBMatchEvent])
	if err != nil {
		return nil, errors.Wrap(err, "could not scan match events")
	}

	return pure_utils.MapErr(dbMatches, dbmodels.AdaptMatchEvent)
}
