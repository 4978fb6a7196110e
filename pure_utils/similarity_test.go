package pure_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditRatio(t *testing.T) {
	tests := []struct {
		name     string
		s1       string
		s2       string
		expected float64
	}{
		{"empty left", "", "osama laden", 0},
		{"empty right", "osama laden", "", 0},
		{"identical strings", "osama laden", "osama laden", 100},
		{"completely different strings", "hello", "aaaaa", 0},
		{"one insertion", "jon smith", "john smith", 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EditRatio(tt.s1, tt.s2), 0.01)
		})
	}
}

func TestPartialRatio(t *testing.T) {
	tests := []struct {
		name     string
		s1       string
		s2       string
		expected float64
	}{
		{"substring scores full", "smith", "john smith", 100},
		{"order independent of argument order", "john smith", "smith", 100},
		{"empty input", "", "smith", 0},
		{"equal lengths fall back to edit ratio", "jon", "joe", 66.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PartialRatio(tt.s1, tt.s2), 0.01)
		})
	}
}

func TestTokenSortRatio(t *testing.T) {
	assert.InDelta(t, 100, TokenSortRatio("laden osama", "osama laden"), 0.01)
	assert.InDelta(t, 90, TokenSortRatio("jon smith", "john smith"), 0.01)
	assert.InDelta(t, 0, TokenSortRatio("", "osama laden"), 0.01)
}

func TestTokenSetRatio(t *testing.T) {
	// Duplicated and reordered tokens collapse before comparison.
	assert.InDelta(t, 100, TokenSetRatio("osama osama laden", "laden osama"), 0.01)
	// The intersection alone scoring highest wins.
	assert.InDelta(t, 100, TokenSetRatio("osama bin laden", "laden osama"), 0.01)
	assert.InDelta(t, 0, TokenSetRatio("osama", ""), 0.01)
}

func TestWeightedSimilarity(t *testing.T) {
	score, breakdown := WeightedSimilarity("jon smith", "john smith")

	assert.InDelta(t, 90, breakdown.EditRatio, 0.01)
	assert.InDelta(t, 77.78, breakdown.PartialRatio, 0.01)
	assert.InDelta(t, 90, breakdown.TokenSortRatio, 0.01)
	assert.InDelta(t, 90, breakdown.TokenSetRatio, 0.01)
	assert.InDelta(t, 87.56, score, 0.1)

	score, _ = WeightedSimilarity("", "john smith")
	assert.Zero(t, score)
}
