package models

import (
	"slices"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/slst/slst-backend/pure_utils"
)

type DecisionAction int

const (
	ActionAutoClear DecisionAction = iota
	ActionManualReview
	ActionEscalate
	ActionBlock
	ActionUnknown
)

var ValidDecisionActions = []DecisionAction{
	ActionAutoClear, ActionManualReview, ActionEscalate, ActionBlock,
}

func DecisionActionFrom(s string) DecisionAction {
	switch s {
	case "AUTO_CLEAR":
		return ActionAutoClear
	case "MANUAL_REVIEW":
		return ActionManualReview
	case "ESCALATE":
		return ActionEscalate
	case "BLOCK":
		return ActionBlock
	}

	return ActionUnknown
}

func (a DecisionAction) String() string {
	switch a {
	case ActionAutoClear:
		return "AUTO_CLEAR"
	case ActionManualReview:
		return "MANUAL_REVIEW"
	case ActionEscalate:
		return "ESCALATE"
	case ActionBlock:
		return "BLOCK"
	}

	return "UNKNOWN"
}

// RequiresApproval reports whether the action needs supervisor sign-off
// before it takes effect.
func (a DecisionAction) RequiresApproval() bool {
	switch a {
	case ActionEscalate, ActionBlock:
		return true
	case ActionAutoClear, ActionManualReview:
		return false
	}

	return true
}

type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
	PriorityUnknown
)

var ValidPriorities = []Priority{
	PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical,
}

func PriorityFrom(s string) Priority {
	switch s {
	case "LOW":
		return PriorityLow
	case "MEDIUM":
		return PriorityMedium
	case "HIGH":
		return PriorityHigh
	case "CRITICAL":
		return PriorityCritical
	}

	return PriorityUnknown
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "LOW"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityHigh:
		return "HIGH"
	case PriorityCritical:
		return "CRITICAL"
	}

	return "UNKNOWN"
}

// SlaHours is the maximum number of hours before a decision must be actioned,
// by action and priority. Unknown combinations get a conservative day.
func SlaHours(action DecisionAction, priority Priority) int {
	sla := map[DecisionAction]map[Priority]int{
		ActionAutoClear:    {PriorityLow: 0, PriorityMedium: 0, PriorityHigh: 0, PriorityCritical: 0},
		ActionManualReview: {PriorityLow: 72, PriorityMedium: 24, PriorityHigh: 8, PriorityCritical: 2},
		ActionEscalate:     {PriorityLow: 48, PriorityMedium: 12, PriorityHigh: 4, PriorityCritical: 1},
		ActionBlock:        {PriorityLow: 24, PriorityMedium: 8, PriorityHigh: 2, PriorityCritical: 0},
	}

	if hours, ok := sla[action][priority]; ok {
		return hours
	}
	return 24
}

// WorkflowRouting is the queue, notification and escalation metadata attached
// to a decision.
type WorkflowRouting struct {
	Queue          string
	Notification   bool
	EscalationPath *string
}

// WorkflowFor routes a decision to its work queue. Manual reviews escalate to
// a supervisor when the priority warrants it; anything unrecognized falls back
// to the manual review queue.
func WorkflowFor(action DecisionAction, priority Priority) WorkflowRouting {
	manualReview := WorkflowRouting{
		Queue:        "analyst_review",
		Notification: true,
	}
	if priority == PriorityHigh || priority == PriorityCritical {
		manualReview.EscalationPath = pure_utils.ToPtr("supervisor")
	}

	switch action {
	case ActionAutoClear:
		return WorkflowRouting{Queue: "auto_processed"}
	case ActionManualReview:
		return manualReview
	case ActionEscalate:
		return WorkflowRouting{
			Queue:          "senior_analyst",
			Notification:   true,
			EscalationPath: pure_utils.ToPtr("compliance_manager"),
		}
	case ActionBlock:
		return WorkflowRouting{
			Queue:          "immediate_action",
			Notification:   true,
			EscalationPath: pure_utils.ToPtr("compliance_manager"),
		}
	}

	return manualReview
}

// Decision is the auditable outcome of one screening.
type Decision struct {
	Action           DecisionAction
	Reason           string
	Confidence       Confidence
	Priority         Priority
	RequiresApproval bool
	SlaHours         int
	AssignedTo       *string
	MatchDetails     *ScoredMatch
	FilterApplied    *string
	Workflow         WorkflowRouting
	CreatedAt        time.Time
}

func (d Decision) Validate() error {
	if !slices.Contains(ValidDecisionActions, d.Action) {
		return errors.Newf("invalid decision action %s", d.Action)
	}
	if !slices.Contains(ValidPriorities, d.Priority) {
		return errors.Newf("invalid decision priority %s", d.Priority)
	}
	if d.Reason == "" {
		return errors.New("decision reason is required")
	}
	if d.CreatedAt.IsZero() {
		return errors.New("decision timestamp is required")
	}
	return nil
}
