package dto

import (
	"time"

	"github.com/slst/slst-backend/models"
	"github.com/slst/slst-backend/pure_utils"
)

type ScreenBody struct {
	Name string `json:"name" binding:"required"`
}

type ScreenBatchBody struct {
	Names []string `json:"names" binding:"required"`
}

type APISimilarityBreakdown struct {
	EditRatio      float64 `json:"edit_ratio"`
	PartialRatio   float64 `json:"partial_ratio"`
	TokenSortRatio float64 `json:"token_sort_ratio"`
	TokenSetRatio  float64 `json:"token_set_ratio"`
}

type APITokenPair struct {
	Query  string  `json:"query"`
	Target string  `json:"target"`
	Score  float64 `json:"score"`
}

type APIMatch struct {
	MatchType  string                  `json:"match_type"`
	TargetName string                  `json:"target_name"`
	Source     string                  `json:"source"`
	ListType   string                  `json:"list_type"`
	Score      float64                 `json:"score"`
	RiskScore  float64                 `json:"risk_score"`
	RiskLevel  string                  `json:"risk_level"`
	Confidence string                  `json:"confidence"`
	Breakdown  *APISimilarityBreakdown `json:"breakdown,omitempty"`
	TokenPairs []APITokenPair          `json:"token_pairs,omitempty"`
	MatchRatio float64                 `json:"match_ratio,omitempty"`
}

type APISummary struct {
	TotalMatches   int            `json:"total_matches"`
	HighestRisk    string         `json:"highest_risk"`
	HighestScore   float64        `json:"highest_score"`
	RequiresReview bool           `json:"requires_review"`
	CanAutoClear   bool           `json:"can_auto_clear"`
	RiskBreakdown  map[string]int `json:"risk_breakdown"`
}

type APIWorkflow struct {
	Queue          string  `json:"queue"`
	Notification   bool    `json:"notification"`
	EscalationPath *string `json:"escalation_path,omitempty"`
}

type APIDecision struct {
	Action           string      `json:"action"`
	Reason           string      `json:"reason"`
	Confidence       string      `json:"confidence"`
	Priority         string      `json:"priority"`
	RequiresApproval bool        `json:"requires_approval"`
	SlaHours         int         `json:"sla_hours"`
	AssignedTo       *string     `json:"assigned_to,omitempty"`
	MatchDetails     *APIMatch   `json:"match_details,omitempty"`
	FilterApplied    *string     `json:"filter_applied,omitempty"`
	Workflow         APIWorkflow `json:"workflow"`
	CreatedAt        time.Time   `json:"created_at"`
}

type APIScreeningResult struct {
	Id            string      `json:"id"`
	Query         string      `json:"query"`
	Matches       []APIMatch  `json:"matches"`
	FilteredCount int         `json:"filtered_count"`
	Summary       APISummary  `json:"summary"`
	Decision      APIDecision `json:"decision"`
	AppliedRule   string      `json:"applied_rule"`
	DurationMs    float64     `json:"duration_ms"`
}

func AdaptAPIMatch(match models.ScoredMatch) APIMatch {
	out := APIMatch{
		MatchType:  match.MatchType.String(),
		TargetName: match.TargetName,
		Source:     match.Source.String(),
		ListType:   match.ListType,
		Score:      match.Score,
		RiskScore:  match.RiskScore,
		RiskLevel:  match.RiskLevel.String(),
		Confidence: match.Confidence.String(),
		MatchRatio: match.MatchRatio,
	}
	if match.Breakdown != nil {
		out.Breakdown = &APISimilarityBreakdown{
			EditRatio:      match.Breakdown.EditRatio,
			PartialRatio:   match.Breakdown.PartialRatio,
			TokenSortRatio: match.Breakdown.TokenSortRatio,
			TokenSetRatio:  match.Breakdown.TokenSetRatio,
		}
	}
	out.TokenPairs = pure_utils.Map(match.TokenPairs, func(pair models.TokenPair) APITokenPair {
		return APITokenPair{Query: pair.Query, Target: pair.Target, Score: pair.Score}
	})
	return out
}

func AdaptAPISummary(summary models.ScreeningSummary) APISummary {
	return APISummary{
		TotalMatches:   summary.TotalMatches,
		HighestRisk:    summary.HighestRisk.String(),
		HighestScore:   summary.HighestScore,
		RequiresReview: summary.RequiresReview,
		CanAutoClear:   summary.CanAutoClear,
		RiskBreakdown: map[string]int{
			"high":   summary.RiskBreakdown.High,
			"medium": summary.RiskBreakdown.Medium,
			"low":    summary.RiskBreakdown.Low,
		},
	}
}

func AdaptAPIDecision(decision models.Decision) APIDecision {
	out := APIDecision{
		Action:           decision.Action.String(),
		Reason:           decision.Reason,
		Confidence:       decision.Confidence.String(),
		Priority:         decision.Priority.String(),
		RequiresApproval: decision.RequiresApproval,
		SlaHours:         decision.SlaHours,
		AssignedTo:       decision.AssignedTo,
		FilterApplied:    decision.FilterApplied,
		Workflow: APIWorkflow{
			Queue:          decision.Workflow.Queue,
			Notification:   decision.Workflow.Notification,
			EscalationPath: decision.Workflow.EscalationPath,
		},
		CreatedAt: decision.CreatedAt,
	}
	if decision.MatchDetails != nil {
		match := AdaptAPIMatch(*decision.MatchDetails)
		out.MatchDetails = &match
	}
	return out
}

func AdaptAPIScreeningResult(result models.ScreeningResult) APIScreeningResult {
	return APIScreeningResult{
		Id:            result.Id,
		Query:         result.Query,
		Matches:       pure_utils.Map(result.Matches, AdaptAPIMatch),
		FilteredCount: result.FilteredCount,
		Summary:       AdaptAPISummary(result.Summary),
		Decision:      AdaptAPIDecision(result.Decision),
		AppliedRule:   result.AppliedRule,
		DurationMs:    float64(result.Duration.Microseconds()) / 1000,
	}
}
