package matching

import (
	"cmp"
	"slices"

	"github.com/slst/slst-backend/models"
)

// Exact matches get a boost on top of the source priority weighting.
const exactMatchBoost = 1.2

// MatchScorer converts raw match scores into priority-weighted risk scores
// and aggregates them into a screening summary.
type MatchScorer struct {
	thresholds models.MatchThresholds
}

func NewMatchScorer(thresholds models.MatchThresholds) MatchScorer {
	return MatchScorer{thresholds: thresholds}
}

// RiskScore weights a raw score by the source's list priority, boosts exact
// matches, and clamps the result to 100.
func (s MatchScorer) RiskScore(record models.MatchRecord) float64 {
	multiplier := float64(record.Source.Priority()) / 100
	if record.MatchType == models.MatchTypeExact {
		multiplier *= exactMatchBoost
	}

	return min(record.Score*multiplier, 100)
}

// Score annotates each match in place with its risk score and level.
func (s MatchScorer) Score(matches []models.ScoredMatch) {
	for i := range matches {
		matches[i].RiskScore = s.RiskScore(matches[i].MatchRecord)
		matches[i].RiskLevel = s.thresholds.RiskLevelFor(matches[i].RiskScore)
	}
}

// Rank sorts matches by descending (risk score, list priority, raw score).
// The sort is stable, so repeated screenings of the same input produce
// identical orderings.
func (s MatchScorer) Rank(matches []models.ScoredMatch) {
	slices.SortStableFunc(matches, func(a, b models.ScoredMatch) int {
		if c := cmp.Compare(b.RiskScore, a.RiskScore); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Source.Priority(), a.Source.Priority()); c != 0 {
			return c
		}
		return cmp.Compare(b.Score, a.Score)
	})
}

// Summarize aggregates the surviving matches. An empty list reads as
// auto-clearable with no risk.
func (s MatchScorer) Summarize(matches []models.ScoredMatch) models.ScreeningSummary {
	if len(matches) == 0 {
		return models.ScreeningSummary{
			HighestRisk:  models.RiskLevelNone,
			CanAutoClear: true,
		}
	}

	highest := 0.0
	breakdown := models.RiskBreakdown{}
	for _, match := range matches {
		if match.RiskScore > highest {
			highest = match.RiskScore
		}
		switch s.thresholds.RiskLevelFor(match.RiskScore) {
		case models.RiskLevelHigh:
			breakdown.High++
		case models.RiskLevelMedium:
			breakdown.Medium++
		case models.RiskLevelLow:
			breakdown.Low++
		}
	}

	return models.ScreeningSummary{
		TotalMatches:   len(matches),
		HighestRisk:    s.thresholds.RiskLevelFor(highest),
		HighestScore:   highest,
		RequiresReview: highest >= s.thresholds.High,
		CanAutoClear:   highest < s.thresholds.Low,
		RiskBreakdown:  breakdown,
	}
}
