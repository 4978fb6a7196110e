package pure_utils

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/hashicorp/go-set/v2"
)

// Weights applied when combining the four similarity metrics. These are
// compliance policy constants: changing them is a configuration change.
const (
	editRatioWeight = 0.3
	partialWeight   = 0.2
	tokenSortWeight = 0.3
	tokenSetWeight  = 0.2
)

// SimilarityBreakdown carries the per-metric scores behind a weighted
// similarity score, for audit and match review.
type SimilarityBreakdown struct {
	EditRatio      float64
	PartialRatio   float64
	TokenSortRatio float64
	TokenSetRatio  float64
}

var levenshtein = metrics.NewLevenshtein()

// EditRatio returns the normalized Levenshtein similarity between a and b on a
// 0-100 scale: 100 * (1 - distance/max(len(a), len(b))). Either input being
// empty yields 0.
func EditRatio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return 100 * strutil.Similarity(a, b, levenshtein)
}

// PartialRatio returns the best EditRatio obtainable by sliding the shorter
// string over the longer one and comparing equal-length windows.
func PartialRatio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == len(longer) {
		return EditRatio(string(shorter), string(longer))
	}

	best := 0.0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		score := EditRatio(string(shorter), string(longer[i:i+len(shorter)]))
		if score > best {
			best = score
		}
	}
	return best
}

// TokenSortRatio returns the EditRatio of the two strings after sorting each
// one's whitespace-separated tokens alphabetically.
func TokenSortRatio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return EditRatio(sortedTokenString(a), sortedTokenString(b))
}

// TokenSetRatio deduplicates each side's tokens and compares the intersection
// against the intersection plus each side's unique remainder, returning the
// highest of the pairwise EditRatios.
func TokenSetRatio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	tokensA := set.From(strings.Fields(a))
	tokensB := set.From(strings.Fields(b))

	sect := sortedJoin(tokensA.Intersect(tokensB).(*set.Set[string]).Slice())
	combinedA := joinNonEmpty(sect, sortedJoin(tokensA.Difference(tokensB).(*set.Set[string]).Slice()))
	combinedB := joinNonEmpty(sect, sortedJoin(tokensB.Difference(tokensA).(*set.Set[string]).Slice()))

	best := EditRatio(combinedA, combinedB)
	if score := EditRatio(sect, combinedA); score > best {
		best = score
	}
	if score := EditRatio(sect, combinedB); score > best {
		best = score
	}
	return best
}

// WeightedSimilarity combines the four metrics into a single 0-100 score,
// returning the per-metric breakdown alongside it.
func WeightedSimilarity(a, b string) (float64, SimilarityBreakdown) {
	breakdown := SimilarityBreakdown{
		EditRatio:      EditRatio(a, b),
		PartialRatio:   PartialRatio(a, b),
		TokenSortRatio: TokenSortRatio(a, b),
		TokenSetRatio:  TokenSetRatio(a, b),
	}

	score := breakdown.EditRatio*editRatioWeight +
		breakdown.PartialRatio*partialWeight +
		breakdown.TokenSortRatio*tokenSortWeight +
		breakdown.TokenSetRatio*tokenSetWeight

	return score, breakdown
}

func sortedTokenString(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func sortedJoin(tokens []string) string {
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
