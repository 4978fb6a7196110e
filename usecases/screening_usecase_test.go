package usecases

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slst/slst-backend/models"
	"github.com/slst/slst-backend/usecases/flagging"
	"github.com/slst/slst-backend/usecases/matching"
	"github.com/slst/slst-backend/usecases/preprocessing"
)

type staticListProvider struct {
	list models.CandidateList
}

func (p staticListProvider) Current() models.CandidateList {
	return p.list
}

type recordingAuditTrail struct {
	mu      sync.Mutex
	events  []models.ScreeningEvent
	matches []models.MatchEvent
	err     error
}

func (a *recordingAuditTrail) CreateScreeningEvent(
	ctx context.Context,
	event models.ScreeningEvent,
	matches []models.MatchEvent,
) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, event)
	a.matches = append(a.matches, matches...)
	return a.err
}

func (a *recordingAuditTrail) ListScreeningEvents(ctx context.Context, limit int) ([]models.ScreeningEvent, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return nil, a.err
	}
	if limit > len(a.events) {
		limit = len(a.events)
	}
	return a.events[:limit], nil
}

func (a *recordingAuditTrail) ListMatchEvents(ctx context.Context, screeningId string) ([]models.MatchEvent, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return nil, a.err
	}
	out := make([]models.MatchEvent, 0, len(a.matches))
	for _, match := range a.matches {
		if match.ScreeningId == screeningId {
			out = append(out, match)
		}
	}
	return out, nil
}

func newTestUsecase(t *testing.T, audit AuditTrail, names ...string) *ScreeningUsecase {
	t.Helper()

	processor := preprocessing.NewNameProcessor()
	records := make([]models.CandidateRecord, 0, len(names))
	for _, name := range names {
		profile := processor.Process(name)
		records = append(records, models.CandidateRecord{
			Name:       name,
			Normalized: profile.Normalized,
			Tokens:     profile.Tokens,
			Variants:   profile.Variants,
			Source:     models.ListSourceOFAC,
			ListType:   "SDN",
		})
	}

	return NewScreeningUsecase(
		processor,
		matching.NewMatchingEngine(models.DefaultMatchThresholds()),
		flagging.NewFlaggingEngine(),
		staticListProvider{list: models.CandidateList{Records: records}},
		audit,
		100,
	)
}

func TestScreenExactOfacHit(t *testing.T) {
	audit := &recordingAuditTrail{}
	uc := newTestUsecase(t, audit, "Osama bin Laden")

	result := uc.Screen(context.Background(), "Osama bin Laden")

	require.Len(t, result.Matches, 1)
	assert.Equal(t, models.MatchTypeExact, result.Matches[0].MatchType)
	assert.InDelta(t, 100, result.Matches[0].RiskScore, 0.01)
	assert.Equal(t, models.RiskLevelHigh, result.Summary.HighestRisk)
	assert.Equal(t, models.ActionBlock, result.Decision.Action)
	assert.Contains(t, result.Decision.Reason, "Osama bin Laden")
	assert.Equal(t, "exact_ofac_block", result.AppliedRule)
	assert.True(t, strings.HasPrefix(result.Id, "SLST_"))
	assert.Positive(t, result.Duration)
}

func TestScreenFuzzyHitEscalates(t *testing.T) {
	uc := newTestUsecase(t, &recordingAuditTrail{}, "John Smith")

	result := uc.Screen(context.Background(), "Jon Smith")

	require.NotEmpty(t, result.Matches)
	assert.Equal(t, models.MatchTypeFuzzy, result.Matches[0].MatchType)
	assert.Greater(t, result.Summary.HighestScore, 70.0)
	assert.Less(t, result.Summary.HighestScore, 90.0)
	assert.Equal(t, models.ActionEscalate, result.Decision.Action)
	assert.Equal(t, "senior_analyst", *result.Decision.AssignedTo)
}

func TestScreenUnrelatedNameAutoClears(t *testing.T) {
	uc := newTestUsecase(t, &recordingAuditTrail{}, "Vladimir Petrov", "Sergei Ivanov")

	result := uc.Screen(context.Background(), "Jane Doe")

	assert.Empty(t, result.Matches)
	assert.Equal(t, models.RiskLevelNone, result.Summary.HighestRisk)
	assert.Equal(t, models.ActionAutoClear, result.Decision.Action)
}

func TestScreenEmptyCandidateList(t *testing.T) {
	uc := newTestUsecase(t, &recordingAuditTrail{})

	result := uc.Screen(context.Background(), "Anyone At All")

	assert.Empty(t, result.Matches)
	assert.Equal(t, models.ActionAutoClear, result.Decision.Action)
}

func TestScreenShortQuery(t *testing.T) {
	uc := newTestUsecase(t, &recordingAuditTrail{}, "Li Wei")

	result := uc.Screen(context.Background(), "Li")

	assert.Empty(t, result.Matches)
	assert.Equal(t, models.RiskLevelNone, result.Summary.HighestRisk)
	assert.Equal(t, models.ActionAutoClear, result.Decision.Action)
}

func TestScreenRecordsAuditEvent(t *testing.T) {
	audit := &recordingAuditTrail{}
	uc := newTestUsecase(t, audit, "Osama bin Laden")

	result := uc.Screen(context.Background(), "Osama bin Laden")

	require.Len(t, audit.events, 1)
	assert.Equal(t, result.Id, audit.events[0].ScreeningId)
	assert.Equal(t, models.ActionBlock, audit.events[0].Decision)
	assert.Equal(t, 1, audit.events[0].MatchCount)
}

func TestScreenSurvivesAuditFailure(t *testing.T) {
	audit := &recordingAuditTrail{err: errors.New("connection refused")}
	uc := newTestUsecase(t, audit, "Osama bin Laden")

	result := uc.Screen(context.Background(), "Osama bin Laden")

	assert.Equal(t, models.ActionBlock, result.Decision.Action)
}

func TestScreenBatchPreservesOrder(t *testing.T) {
	uc := newTestUsecase(t, &recordingAuditTrail{}, "Osama bin Laden", "John Smith")

	queries := []string{"Osama bin Laden", "Jane Doe", "Jon Smith"}
	results, err := uc.ScreenBatch(context.Background(), queries)
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, "Osama bin Laden", results[0].Query)
	assert.Equal(t, models.ActionBlock, results[0].Decision.Action)
	assert.Equal(t, "Jane Doe", results[1].Query)
	assert.Equal(t, models.ActionAutoClear, results[1].Decision.Action)
	assert.Equal(t, "Jon Smith", results[2].Query)
	assert.Equal(t, models.ActionEscalate, results[2].Decision.Action)
}

func TestScreenBatchRejectsOversizedBatch(t *testing.T) {
	uc := newTestUsecase(t, &recordingAuditTrail{}, "John Smith")
	uc.maxBatchSize = 2

	_, err := uc.ScreenBatch(context.Background(), []string{"a name", "b name", "c name"})

	assert.ErrorIs(t, err, models.BadParameterError)
}
