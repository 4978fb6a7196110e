package flagging

import (
	"time"

	"github.com/slst/slst-backend/models"
)

// Outcome is what the flagging pipeline hands back to the screening caller:
// the surviving matches, the suppressed ones with their reasons, and the
// fully enriched decision.
type Outcome struct {
	Matches     []models.ScoredMatch
	Filtered    []models.ScoredMatch
	Decision    models.Decision
	AppliedRule string
}

// FlaggingEngine turns a ranked match list into a compliance decision. It is
// stateless; one instance serves all screenings.
type FlaggingEngine struct{}

func NewFlaggingEngine() FlaggingEngine {
	return FlaggingEngine{}
}

// Process applies the false-positive filters, then the business rules, then
// enriches and validates the resulting decision. A decision that fails
// validation is replaced by a manual review fallback rather than surfaced as
// an error.
func (e FlaggingEngine) Process(
	query string,
	matches []models.ScoredMatch,
	summary models.ScreeningSummary,
	now time.Time,
) Outcome {
	surviving, removed := ApplyFilters(query, matches)

	decision, appliedRule := applyRules(ruleInput{
		query:   query,
		matches: surviving,
		summary: summary,
	})
	decision = enrich(decision, now)

	if err := decision.Validate(); err != nil {
		decision = fallbackDecision(now)
	}

	return Outcome{
		Matches:     surviving,
		Filtered:    removed,
		Decision:    decision,
		AppliedRule: appliedRule,
	}
}

// enrich fills in the routing fields a rule never sets itself: approval,
// SLA, workflow and timestamp all derive from the action and priority.
func enrich(decision models.Decision, now time.Time) models.Decision {
	decision.RequiresApproval = decision.Action.RequiresApproval()
	decision.SlaHours = models.SlaHours(decision.Action, decision.Priority)
	decision.Workflow = models.WorkflowFor(decision.Action, decision.Priority)
	decision.CreatedAt = now
	return decision
}

// fallbackDecision is the conservative substitute for a malformed decision.
// It is built from enumerated values only and can never fail validation.
func fallbackDecision(now time.Time) models.Decision {
	return enrich(models.Decision{
		Action:     models.ActionManualReview,
		Reason:     "Decision validation failed, routing for manual review",
		Confidence: models.ConfidenceMedium,
		Priority:   models.PriorityMedium,
	}, now)
}
