package matching

import (
	"strings"

	"github.com/slst/slst-backend/models"
	"github.com/slst/slst-backend/pure_utils"
)

// ExactMatcher checks case- and whitespace-insensitive equality of
// normalized forms.
type ExactMatcher struct{}

func (ExactMatcher) Match(query, target string) models.MatchRecord {
	isMatch := strings.TrimSpace(strings.ToLower(query)) == strings.TrimSpace(strings.ToLower(target))

	record := models.MatchRecord{
		MatchType:  models.MatchTypeExact,
		IsMatch:    isMatch,
		Confidence: models.ConfidenceHigh,
	}
	if isMatch {
		record.Score = 100
	}

	return record
}

// FuzzyMatcher scores the weighted combination of the four similarity
// metrics against the configured thresholds.
type FuzzyMatcher struct {
	thresholds models.MatchThresholds
}

func (m FuzzyMatcher) Match(query, target string) models.MatchRecord {
	score, breakdown := pure_utils.WeightedSimilarity(query, target)
	level := m.thresholds.RiskLevelFor(score)

	return models.MatchRecord{
		MatchType:  models.MatchTypeFuzzy,
		Score:      score,
		Breakdown:  &breakdown,
		IsMatch:    score >= m.thresholds.Low,
		Confidence: models.ConfidenceFor(level),
	}
}

// TokenMatcher pairs each query token with its best-scoring target token.
// Unmatched query tokens still count in the denominator, so partial overlaps
// score proportionally.
type TokenMatcher struct {
	thresholds models.MatchThresholds
}

func (m TokenMatcher) Match(queryTokens, targetTokens []string) models.MatchRecord {
	record := models.MatchRecord{
		MatchType:  models.MatchTypeToken,
		Confidence: models.ConfidenceMedium,
	}
	if len(queryTokens) == 0 || len(targetTokens) == 0 {
		return record
	}

	var totalScore float64
	pairs := make([]models.TokenPair, 0, len(queryTokens))

	for _, queryToken := range queryTokens {
		bestScore := 0.0
		bestTarget := ""

		for _, targetToken := range targetTokens {
			if score := pure_utils.EditRatio(queryToken, targetToken); score > bestScore {
				bestScore = score
				bestTarget = targetToken
			}
		}

		if bestScore >= m.thresholds.Low {
			pairs = append(pairs, models.TokenPair{
				Query:  queryToken,
				Target: bestTarget,
				Score:  bestScore,
			})
			totalScore += bestScore
		}
	}

	record.Score = totalScore / float64(len(queryTokens))
	record.TokenPairs = pairs
	record.MatchRatio = float64(len(pairs)) / float64(len(queryTokens))
	record.IsMatch = record.Score >= m.thresholds.Low

	return record
}
