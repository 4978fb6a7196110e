package flagging

import (
	"strings"

	"github.com/hashicorp/go-set/v2"

	"github.com/slst/slst-backend/models"
)

const (
	commonWordFilterCutoff = 75.0
	shortNameFilterCutoff  = 90.0
	titleOnlyFilterCutoff  = 80.0
	weakTokenScoreCutoff   = 70.0
	weakTokenRatioCutoff   = 0.6
	geographicFilterCutoff = 75.0

	shortNameMaxLength = 3
)

const (
	reasonCommonBusinessWord = "Common business word match"
	reasonShortName          = "Short name with low confidence"
	reasonTitleOnly          = "Title-only match"
	reasonWeakToken          = "Weak partial match"
	reasonGeographic         = "Geographic false positive"
)

// Generic corporate terms that make two unrelated entities look alike.
var businessWords = set.From([]string{
	"company", "corporation", "limited", "ltd", "inc", "llc",
	"bank", "group", "international", "trading", "services",
	"foundation", "association", "organization", "society",
})

var honorificTitles = set.From([]string{
	"mr", "mrs", "ms", "dr", "prof", "sir", "lady", "lord",
})

var geographicTerms = set.From([]string{
	"north", "south", "east", "west", "central", "new", "old",
	"city", "town", "village", "county", "state", "province",
	"republic", "kingdom", "emirates", "federation",
})

type falsePositiveFilter func(query string, matches []models.ScoredMatch) (surviving, removed []models.ScoredMatch)

// filterPipeline runs in a fixed order. Each filter only sees the survivors
// of the previous one, so a match is removed at most once.
var filterPipeline = []falsePositiveFilter{
	filterCommonBusinessWords,
	filterShortNames,
	filterTitleOnlyMatches,
	filterWeakTokenMatches,
	filterGeographicOverlap,
}

// ApplyFilters runs the false-positive pipeline over a ranked match list.
// Removed matches come back marked with their filter reason so the audit
// trail can account for them.
func ApplyFilters(query string, matches []models.ScoredMatch) (surviving, removed []models.ScoredMatch) {
	surviving = matches
	for _, filter := range filterPipeline {
		var dropped []models.ScoredMatch
		surviving, dropped = filter(query, surviving)
		removed = append(removed, dropped...)
	}
	return surviving, removed
}

func splitByReason(
	matches []models.ScoredMatch,
	reason string,
	drop func(match models.ScoredMatch) bool,
) (surviving, removed []models.ScoredMatch) {
	surviving = make([]models.ScoredMatch, 0, len(matches))
	for _, match := range matches {
		if drop(match) {
			match.Filtered = true
			match.FilterReason = reason
			removed = append(removed, match)
			continue
		}
		surviving = append(surviving, match)
	}
	return surviving, removed
}

func filterCommonBusinessWords(query string, matches []models.ScoredMatch) ([]models.ScoredMatch, []models.ScoredMatch) {
	queryLower := strings.ToLower(query)

	return splitByReason(matches, reasonCommonBusinessWord, func(match models.ScoredMatch) bool {
		return containsAnyTerm(queryLower, businessWords) &&
			containsAnyTerm(strings.ToLower(match.TargetName), businessWords) &&
			match.Score < commonWordFilterCutoff
	})
}

func filterShortNames(query string, matches []models.ScoredMatch) ([]models.ScoredMatch, []models.ScoredMatch) {
	// Very short queries cannot be matched with any confidence.
	if len(strings.TrimSpace(query)) <= shortNameMaxLength {
		return splitByReason(matches, reasonShortName, func(models.ScoredMatch) bool { return true })
	}

	return splitByReason(matches, reasonShortName, func(match models.ScoredMatch) bool {
		return len(strings.TrimSpace(match.TargetName)) <= shortNameMaxLength &&
			match.Score < shortNameFilterCutoff
	})
}

func filterTitleOnlyMatches(query string, matches []models.ScoredMatch) ([]models.ScoredMatch, []models.ScoredMatch) {
	queryWords := set.From(strings.Fields(strings.ToLower(query)))

	return splitByReason(matches, reasonTitleOnly, func(match models.ScoredMatch) bool {
		targetWords := set.From(strings.Fields(strings.ToLower(match.TargetName)))
		overlap := queryWords.Intersect(targetWords).(*set.Set[string])
		titles := overlap.Intersect(honorificTitles).(*set.Set[string])

		return titles.Size() > 0 &&
			float64(titles.Size())/float64(overlap.Size()) > 0.5 &&
			match.Score < titleOnlyFilterCutoff
	})
}

func filterWeakTokenMatches(_ string, matches []models.ScoredMatch) ([]models.ScoredMatch, []models.ScoredMatch) {
	return splitByReason(matches, reasonWeakToken, func(match models.ScoredMatch) bool {
		return match.MatchType == models.MatchTypeToken &&
			match.Score < weakTokenScoreCutoff &&
			match.MatchRatio < weakTokenRatioCutoff
	})
}

func filterGeographicOverlap(query string, matches []models.ScoredMatch) ([]models.ScoredMatch, []models.ScoredMatch) {
	queryLower := strings.ToLower(query)

	return splitByReason(matches, reasonGeographic, func(match models.ScoredMatch) bool {
		return containsAnyTerm(queryLower, geographicTerms) &&
			containsAnyTerm(strings.ToLower(match.TargetName), geographicTerms) &&
			match.Score < geographicFilterCutoff
	})
}

// containsAnyTerm reports whether any of the terms occurs as a substring.
// Substring containment mirrors how the reference lists embed these terms in
// longer entity names.
func containsAnyTerm(s string, terms *set.Set[string]) bool {
	for _, term := range terms.Slice() {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
