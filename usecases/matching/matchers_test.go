package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slst/slst-backend/models"
)

func TestExactMatcher(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		target  string
		isMatch bool
	}{
		{"identical strings", "osama laden", "osama laden", true},
		{"case insensitive", "Osama Laden", "osama laden", true},
		{"surrounding whitespace ignored", " osama laden ", "osama laden", true},
		{"different names", "osama laden", "omar laden", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := ExactMatcher{}.Match(tt.query, tt.target)

			assert.Equal(t, tt.isMatch, record.IsMatch)
			assert.Equal(t, models.MatchTypeExact, record.MatchType)
			if tt.isMatch {
				assert.Equal(t, float64(100), record.Score)
			} else {
				assert.Zero(t, record.Score)
			}
		})
	}
}

func TestFuzzyMatcher(t *testing.T) {
	matcher := FuzzyMatcher{thresholds: models.DefaultMatchThresholds()}

	t.Run("close names match with high confidence", func(t *testing.T) {
		record := matcher.Match("jon smith", "john smith")

		assert.True(t, record.IsMatch)
		assert.Equal(t, models.MatchTypeFuzzy, record.MatchType)
		assert.InDelta(t, 87.56, record.Score, 0.1)
		assert.Equal(t, models.ConfidenceHigh, record.Confidence)
		assert.NotNil(t, record.Breakdown)
	})

	t.Run("unrelated names do not match", func(t *testing.T) {
		record := matcher.Match("jane doe", "osama laden")

		assert.False(t, record.IsMatch)
		assert.Less(t, record.Score, 60.0)
	})
}

func TestTokenMatcher(t *testing.T) {
	matcher := TokenMatcher{thresholds: models.DefaultMatchThresholds()}

	t.Run("pairs each query token with its best target token", func(t *testing.T) {
		record := matcher.Match([]string{"jon", "smith"}, []string{"john", "smith"})

		assert.True(t, record.IsMatch)
		assert.InDelta(t, 87.5, record.Score, 0.01)
		assert.InDelta(t, 1.0, record.MatchRatio, 0.001)
		assert.Len(t, record.TokenPairs, 2)
		assert.Equal(t, "john", record.TokenPairs[0].Target)
	})

	t.Run("unmatched query tokens dilute the score", func(t *testing.T) {
		record := matcher.Match([]string{"smith", "xyzzy"}, []string{"smith"})

		assert.InDelta(t, 50, record.Score, 0.01)
		assert.InDelta(t, 0.5, record.MatchRatio, 0.001)
		assert.False(t, record.IsMatch)
	})

	t.Run("empty query tokens short-circuit", func(t *testing.T) {
		record := matcher.Match(nil, []string{"smith"})

		assert.False(t, record.IsMatch)
		assert.Zero(t, record.Score)
	})

	t.Run("empty target tokens short-circuit", func(t *testing.T) {
		record := matcher.Match([]string{"smith"}, nil)

		assert.False(t, record.IsMatch)
		assert.Zero(t, record.Score)
	})
}
