package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		args string
		want string
	}{
		{"lower-cases and strips punctuation", "DR. MOHAMMED AL-QAEDA!!!", "dr mohammed al-qaeda"},
		{"collapses whitespace runs", "osama   bin\tladen", "osama bin laden"},
		{"keeps apostrophes", "O'Brien & Sons", "o'brien sons"},
		{"blank input", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.args))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		args string
		want string
	}{
		{"canonicalizes spelling variants", "muhammad el-masri", "mohammed al-masri"},
		{"al prefix variants", "al-qaeda", "al qaeda"},
		{"tightens hyphen spacing", "abd - allah", "abdul-allah"},
		{"transliterates accents", "josé maría", "jose maria"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.args))
		})
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"mohammed", "al", "qaeda"}, Tokenize("mohammed al-qaeda"))
	assert.Equal(t, []string{"osama", "laden"}, Tokenize("osama x laden"))
	assert.Nil(t, Tokenize(""))
}

func TestProcess(t *testing.T) {
	p := NewNameProcessor()

	profile := p.Process("Osama bin Laden")

	assert.Equal(t, "Osama bin Laden", profile.Original)
	assert.Equal(t, "osama laden", profile.Cleaned)
	assert.Equal(t, "osama laden", profile.Normalized)
	assert.Equal(t, []string{"osama", "laden"}, profile.Tokens)
	assert.True(t, profile.Variants.Contains("osama laden"))
	assert.True(t, profile.Variants.Contains("osama"))
	assert.True(t, profile.Variants.Contains("laden"))
}

func TestProcessDropsHonorificsAndConnectors(t *testing.T) {
	p := NewNameProcessor()

	profile := p.Process("Dr. Sheikh Omar of the Al Nusra")

	assert.Equal(t, "omar nusra", profile.Normalized)
	assert.Equal(t, []string{"omar", "nusra"}, profile.Tokens)
}

func TestProcessEmptyInput(t *testing.T) {
	p := NewNameProcessor()

	profile := p.Process("")

	assert.True(t, profile.IsEmpty())
	assert.Empty(t, profile.Tokens)
	assert.True(t, profile.Variants.Empty())
}

func TestProcessIsDeterministic(t *testing.T) {
	p := NewNameProcessor()

	first := p.Process("Mohamed Abdel Rahman")
	second := p.Process("Mohamed Abdel Rahman")

	assert.Equal(t, first, second)
	assert.Equal(t, "mohammed abdul rahman", first.Normalized)
}
