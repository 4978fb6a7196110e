package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/slst/slst-backend/models"
	"github.com/slst/slst-backend/usecases/flagging"
	"github.com/slst/slst-backend/usecases/matching"
	"github.com/slst/slst-backend/usecases/preprocessing"
	"github.com/slst/slst-backend/utils"
)

const batchParallelism = 8

// candidateListProvider hands out the current reference-data snapshot.
type candidateListProvider interface {
	Current() models.CandidateList
}

// AuditTrail persists screening outcomes and reads them back for review.
// Implementations must be safe for concurrent use; write failures are logged
// by the screening usecase, never propagated.
type AuditTrail interface {
	CreateScreeningEvent(ctx context.Context, event models.ScreeningEvent, matches []models.MatchEvent) error
	ListScreeningEvents(ctx context.Context, limit int) ([]models.ScreeningEvent, error)
	ListMatchEvents(ctx context.Context, screeningId string) ([]models.MatchEvent, error)
}

// ScreeningUsecase is the entry point of the screening pipeline: normalize
// the query, match it against the candidate snapshot, suppress false
// positives and produce an auditable decision.
type ScreeningUsecase struct {
	processor      *preprocessing.NameProcessor
	engine         *matching.MatchingEngine
	flagging       flagging.FlaggingEngine
	candidateLists candidateListProvider
	audit          AuditTrail
	maxBatchSize   int
}

func NewScreeningUsecase(
	processor *preprocessing.NameProcessor,
	engine *matching.MatchingEngine,
	flaggingEngine flagging.FlaggingEngine,
	candidateLists candidateListProvider,
	audit AuditTrail,
	maxBatchSize int,
) *ScreeningUsecase {
	return &ScreeningUsecase{
		processor:      processor,
		engine:         engine,
		flagging:       flaggingEngine,
		candidateLists: candidateLists,
		audit:          audit,
		maxBatchSize:   maxBatchSize,
	}
}

// Screen runs one query against the current candidate snapshot. It never
// returns an error: malformed or empty queries degrade to an empty result
// with an auto-clear decision.
func (uc *ScreeningUsecase) Screen(ctx context.Context, query string) models.ScreeningResult {
	return uc.screenAgainst(ctx, query, uc.candidateLists.Current())
}

// ScreenBatch screens every query against one shared snapshot, concurrently.
// Results come back in input order regardless of completion order.
func (uc *ScreeningUsecase) ScreenBatch(ctx context.Context, queries []string) ([]models.ScreeningResult, error) {
	if uc.maxBatchSize > 0 && len(queries) > uc.maxBatchSize {
		return nil, errors.Wrapf(models.BadParameterError,
			"batch size %d exceeds the maximum of %d", len(queries), uc.maxBatchSize)
	}

	snapshot := uc.candidateLists.Current()
	results := make([]models.ScreeningResult, len(queries))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(batchParallelism)
	for i, query := range queries {
		i, query := i, query
		group.Go(func() error {
			results[i] = uc.screenAgainst(groupCtx, query, snapshot)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (uc *ScreeningUsecase) screenAgainst(
	ctx context.Context,
	query string,
	snapshot models.CandidateList,
) models.ScreeningResult {
	start := time.Now()

	profile := uc.processor.Process(query)
	matches, summary := uc.engine.ScreenName(profile, snapshot)
	outcome := uc.flagging.Process(query, matches, summary, time.Now())

	result := models.ScreeningResult{
		Id:            newScreeningId(start),
		Query:         query,
		Profile:       profile,
		Matches:       outcome.Matches,
		FilteredCount: len(outcome.Filtered),
		Summary:       summary,
		Decision:      outcome.Decision,
		AppliedRule:   outcome.AppliedRule,
		Duration:      time.Since(start),
	}

	uc.recordAudit(ctx, result)
	return result
}

// recordAudit hands the result to the audit trail. Audit failures must not
// break the screening path, so they are logged and swallowed.
func (uc *ScreeningUsecase) recordAudit(ctx context.Context, result models.ScreeningResult) {
	event, matchEvents := models.NewScreeningEvent(result, time.Now())
	if err := uc.audit.CreateScreeningEvent(ctx, event, matchEvents); err != nil {
		utils.LoggerFromContext(ctx).WarnContext(ctx,
			"failed to record screening audit event",
			"screening_id", result.Id, "error", err)
	}
}

func newScreeningId(at time.Time) string {
	return fmt.Sprintf("SLST_%s_%s", at.Format("20060102_150405"), uuid.NewString()[:8])
}
