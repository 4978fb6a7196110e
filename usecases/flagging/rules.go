package flagging

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-set/v2"

	"github.com/slst/slst-backend/models"
	"github.com/slst/slst-backend/pure_utils"
)

const (
	highRiskScoreCutoff   = 85.0
	commonNameScoreCutoff = 80.0
)

// Full names known to collide with sanctioned individuals by coincidence.
var commonNames = set.From([]string{
	"john smith", "mary johnson", "david brown", "michael davis",
	"james wilson", "robert miller", "william moore", "richard taylor",
})

// ruleInput is everything a business rule may consult: the query as the
// caller typed it, the matches that survived filtering, and their summary.
type ruleInput struct {
	query   string
	matches []models.ScoredMatch
	summary models.ScreeningSummary
}

type businessRule struct {
	name     string
	evaluate func(in ruleInput) *models.Decision
}

// businessRules is evaluated in order; the first rule returning a decision
// wins and the rest are never consulted.
var businessRules = []businessRule{
	{name: "exact_ofac_block", evaluate: exactOfacBlock},
	{name: "high_risk_escalate", evaluate: highRiskEscalate},
	{name: "medium_risk_review", evaluate: mediumRiskReview},
	{name: "low_risk_clear", evaluate: lowRiskClear},
	{name: "common_name_filter", evaluate: commonNameFilter},
}

// applyRules returns the first decision produced by the ordered rule list,
// along with the name of the rule that produced it.
func applyRules(in ruleInput) (models.Decision, string) {
	for _, rule := range businessRules {
		if decision := rule.evaluate(in); decision != nil {
			return *decision, rule.name
		}
	}

	return models.Decision{
		Action:     models.ActionAutoClear,
		Reason:     "No significant matches found",
		Confidence: models.ConfidenceHigh,
		Priority:   models.PriorityLow,
	}, "default"
}

// exactOfacBlock blocks immediately on a perfect hit against the primary
// authority list.
func exactOfacBlock(in ruleInput) *models.Decision {
	for _, match := range in.matches {
		if match.Source == models.ListSourceOFAC &&
			match.MatchType == models.MatchTypeExact &&
			(match.Score == 100.0 || match.RiskScore == 100.0) {
			return &models.Decision{
				Action:       models.ActionBlock,
				Reason:       fmt.Sprintf("Exact OFAC match: %s", match.TargetName),
				Confidence:   models.ConfidenceHigh,
				Priority:     models.PriorityCritical,
				MatchDetails: pure_utils.ToPtr(match),
			}
		}
	}
	return nil
}

func highRiskEscalate(in ruleInput) *models.Decision {
	if in.summary.HighestScore < highRiskScoreCutoff {
		return nil
	}

	return &models.Decision{
		Action:       models.ActionEscalate,
		Reason:       fmt.Sprintf("High-risk match (score: %.1f)", in.summary.HighestScore),
		Confidence:   models.ConfidenceHigh,
		Priority:     models.PriorityHigh,
		AssignedTo:   pure_utils.ToPtr("senior_analyst"),
		MatchDetails: highestRiskMatch(in.matches),
	}
}

func mediumRiskReview(in ruleInput) *models.Decision {
	if !in.summary.RequiresReview || in.summary.HighestScore >= highRiskScoreCutoff {
		return nil
	}

	var best *models.ScoredMatch
	if len(in.matches) > 0 {
		best = pure_utils.ToPtr(in.matches[0])
	}

	return &models.Decision{
		Action:       models.ActionManualReview,
		Reason:       "Medium-risk match requires review",
		Confidence:   models.ConfidenceMedium,
		Priority:     models.PriorityMedium,
		AssignedTo:   pure_utils.ToPtr("analyst"),
		MatchDetails: best,
	}
}

func lowRiskClear(in ruleInput) *models.Decision {
	if !in.summary.CanAutoClear {
		return nil
	}

	return &models.Decision{
		Action:     models.ActionAutoClear,
		Reason:     "Low risk score, auto-cleared",
		Confidence: models.ConfidenceMedium,
		Priority:   models.PriorityLow,
	}
}

func commonNameFilter(in ruleInput) *models.Decision {
	query := strings.ToLower(strings.TrimSpace(in.query))
	if !commonNames.Contains(query) || in.summary.HighestScore >= commonNameScoreCutoff {
		return nil
	}

	return &models.Decision{
		Action:        models.ActionAutoClear,
		Reason:        "Common name with low confidence match",
		Confidence:    models.ConfidenceMedium,
		Priority:      models.PriorityLow,
		FilterApplied: pure_utils.ToPtr("common_name"),
	}
}

func highestRiskMatch(matches []models.ScoredMatch) *models.ScoredMatch {
	var best *models.ScoredMatch
	for i, match := range matches {
		if best == nil || match.RiskScore > best.RiskScore {
			best = &matches[i]
		}
	}
	if best == nil {
		return nil
	}
	return pure_utils.ToPtr(*best)
}
