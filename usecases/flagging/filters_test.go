package flagging

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slst/slst-backend/models"
)

func match(matchType models.MatchType, score float64, targetName string) models.ScoredMatch {
	return models.ScoredMatch{
		MatchRecord: models.MatchRecord{
			MatchType:  matchType,
			Score:      score,
			TargetName: targetName,
			Source:     models.ListSourceOFAC,
			IsMatch:    true,
		},
		RiskScore: score,
	}
}

func TestFilterCommonBusinessWords(t *testing.T) {
	matches := []models.ScoredMatch{
		match(models.MatchTypeFuzzy, 70, "Eastern Trading Company"),
		match(models.MatchTypeFuzzy, 80, "Western Trading Company"),
	}

	surviving, removed := ApplyFilters("Global Trading Ltd", matches)

	assert.Len(t, surviving, 1)
	assert.Equal(t, "Western Trading Company", surviving[0].TargetName)
	assert.Len(t, removed, 1)
	assert.True(t, removed[0].Filtered)
	assert.Equal(t, "Common business word match", removed[0].FilterReason)
}

func TestFilterShortNames(t *testing.T) {
	t.Run("short query discards every match", func(t *testing.T) {
		matches := []models.ScoredMatch{
			match(models.MatchTypeFuzzy, 95, "Li Wei"),
			match(models.MatchTypeFuzzy, 99, "Li Na"),
		}

		surviving, removed := ApplyFilters("Li", matches)

		assert.Empty(t, surviving)
		assert.Len(t, removed, 2)
	})

	t.Run("short target needs a near-perfect score", func(t *testing.T) {
		matches := []models.ScoredMatch{
			match(models.MatchTypeFuzzy, 85, "Li"),
			match(models.MatchTypeFuzzy, 92, "Wu"),
		}

		surviving, removed := ApplyFilters("Li Wei", matches)

		assert.Len(t, surviving, 1)
		assert.Equal(t, "Wu", surviving[0].TargetName)
		assert.Len(t, removed, 1)
		assert.Equal(t, "Short name with low confidence", removed[0].FilterReason)
	})
}

func TestFilterTitleOnlyMatches(t *testing.T) {
	matches := []models.ScoredMatch{
		match(models.MatchTypeFuzzy, 65, "Dr Ahmed Hassan"),
		match(models.MatchTypeFuzzy, 85, "Dr Jonathan Smith"),
	}

	// Only "dr" overlaps with the first target, so the overlap is all titles.
	surviving, removed := ApplyFilters("Dr Jonathan Smith", matches)

	assert.Len(t, surviving, 1)
	assert.Equal(t, "Dr Jonathan Smith", surviving[0].TargetName)
	assert.Len(t, removed, 1)
	assert.Equal(t, "Title-only match", removed[0].FilterReason)
}

func TestFilterWeakTokenMatches(t *testing.T) {
	weak := match(models.MatchTypeToken, 62, "Ivan Petrov Sidorov")
	weak.MatchRatio = 0.33
	strong := match(models.MatchTypeToken, 62, "Anna Petrova")
	strong.MatchRatio = 0.67

	surviving, removed := ApplyFilters("Boris Petrov", []models.ScoredMatch{weak, strong})

	assert.Len(t, surviving, 1)
	assert.Equal(t, "Anna Petrova", surviving[0].TargetName)
	assert.Len(t, removed, 1)
	assert.Equal(t, "Weak partial match", removed[0].FilterReason)
}

func TestFilterGeographicOverlap(t *testing.T) {
	matches := []models.ScoredMatch{
		match(models.MatchTypeFuzzy, 68, "South Island Republic Front"),
		match(models.MatchTypeFuzzy, 78, "North Island Republic Front"),
	}

	surviving, removed := ApplyFilters("North Republic Movement", matches)

	assert.Len(t, surviving, 1)
	assert.Equal(t, "North Island Republic Front", surviving[0].TargetName)
	assert.Len(t, removed, 1)
	assert.Equal(t, "Geographic false positive", removed[0].FilterReason)
}

func TestFiltersRemoveAMatchOnlyOnce(t *testing.T) {
	// "Dr" is both a short name and a title-only overlap. The short-name
	// filter runs first and claims it; the title filter never sees it.
	short := match(models.MatchTypeFuzzy, 65, "Dr")

	surviving, removed := ApplyFilters("Dr Li Wei", []models.ScoredMatch{short})

	assert.Empty(t, surviving)
	assert.Len(t, removed, 1)
	assert.Equal(t, "Short name with low confidence", removed[0].FilterReason)
}

func TestFiltersKeepHighScores(t *testing.T) {
	matches := []models.ScoredMatch{
		match(models.MatchTypeExact, 100, "Global Trading Ltd"),
	}

	surviving, removed := ApplyFilters("Global Trading Ltd", matches)

	assert.Len(t, surviving, 1)
	assert.Empty(t, removed)
}
