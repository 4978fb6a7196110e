package matching

import (
	"strings"
	"unicode/utf8"

	"github.com/slst/slst-backend/models"
)

// MatchingEngine runs a query profile against every candidate record with the
// three matcher strategies, then scores, prunes and ranks the results. It is
// a pure linear scan: acceptable for lists in the low tens of thousands, a
// known scaling limit beyond that.
type MatchingEngine struct {
	thresholds models.MatchThresholds
	exact      ExactMatcher
	fuzzy      FuzzyMatcher
	token      TokenMatcher
	scorer     MatchScorer
}

func NewMatchingEngine(thresholds models.MatchThresholds) *MatchingEngine {
	return &MatchingEngine{
		thresholds: thresholds,
		fuzzy:      FuzzyMatcher{thresholds: thresholds},
		token:      TokenMatcher{thresholds: thresholds},
		scorer:     NewMatchScorer(thresholds),
	}
}

func (e *MatchingEngine) Scorer() MatchScorer {
	return e.scorer
}

// ScreenName returns the ranked significant matches for a query and their
// summary. Queries shorter than the minimum name length short-circuit to an
// empty result.
func (e *MatchingEngine) ScreenName(
	profile models.QueryProfile,
	candidates models.CandidateList,
) ([]models.ScoredMatch, models.ScreeningSummary) {
	if utf8.RuneCountInString(strings.TrimSpace(profile.Original)) < e.thresholds.MinNameLength {
		return nil, e.scorer.Summarize(nil)
	}

	matches := make([]models.ScoredMatch, 0, 8)
	for _, candidate := range candidates.Records {
		matches = append(matches, e.matchCandidate(profile, candidate)...)
	}

	e.scorer.Score(matches)

	// Matches below the low threshold are noise, not audit material.
	significant := matches[:0]
	for _, match := range matches {
		if match.RiskScore >= e.thresholds.Low {
			significant = append(significant, match)
		}
	}

	e.scorer.Rank(significant)

	return significant, e.scorer.Summarize(significant)
}

// matchCandidate emits at most one record per strategy. An exact match
// short-circuits the fuzzy and token strategies for that candidate; fuzzy and
// token are independent and may both fire.
func (e *MatchingEngine) matchCandidate(
	profile models.QueryProfile,
	candidate models.CandidateRecord,
) []models.ScoredMatch {
	if candidate.Normalized == "" {
		return nil
	}

	tag := func(record models.MatchRecord) models.ScoredMatch {
		record.TargetName = candidate.Name
		record.Source = candidate.Source
		record.ListType = candidate.ListType
		return models.ScoredMatch{MatchRecord: record}
	}

	if exact := e.exact.Match(profile.Normalized, candidate.Normalized); exact.IsMatch {
		return []models.ScoredMatch{tag(exact)}
	}

	matches := make([]models.ScoredMatch, 0, 2)

	if fuzzy := e.fuzzy.Match(profile.Normalized, candidate.Normalized); fuzzy.IsMatch {
		matches = append(matches, tag(fuzzy))
	}

	if len(candidate.Tokens) > 0 {
		if token := e.token.Match(profile.Tokens, candidate.Tokens); token.IsMatch {
			matches = append(matches, tag(token))
		}
	}

	return matches
}
