package preprocessing

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hashicorp/go-set/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/mozillazg/go-unidecode"

	"github.com/slst/slst-backend/models"
)

const (
	minTokenLength = 2

	profileCacheSize = 4096
	profileCacheTTL  = time.Hour
)

// Punctuation stripped during cleaning. Apostrophes and hyphens survive so
// that spacing normalization and hyphen tokenization can see them.
const strippedPunctuation = "!\"#$%&()*+,./:;<=>?@[\\]^_`{|}~"

var honorifics = set.From([]string{
	"mr", "mrs", "ms", "miss", "dr", "prof", "sir", "lady",
	"lord", "sheikh", "imam", "mullah", "ayatollah",
})

var connectorWords = set.From([]string{
	"and", "or", "the", "of", "bin", "ibn", "abu", "al",
})

var (
	whitespaceRuns    = regexp.MustCompile(`\s+`)
	alPrefix          = regexp.MustCompile(`\bal[\s-]`)
	hyphenSpacing     = regexp.MustCompile(`\s*-\s*`)
	apostropheSpacing = regexp.MustCompile(`\s*'\s*`)
)

// Cross-script spelling variants canonicalized to a single rendering, applied
// in order.
var spellingVariants = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`\b(muhammad|mohamed|mohammad)\b`), "mohammed"},
	{regexp.MustCompile(`\b(abd|abdel|abdal)\b`), "abdul"},
	{regexp.MustCompile(`\b(el|ul)\b`), "al"},
	{regexp.MustCompile(`\b(bin|ben)\b`), "ibn"},
}

// NameProcessor canonicalizes raw names into comparable profiles. It is
// deterministic and side-effect free apart from its result cache.
type NameProcessor struct {
	cache *expirable.LRU[string, models.QueryProfile]
}

func NewNameProcessor() *NameProcessor {
	return &NameProcessor{
		cache: expirable.NewLRU[string, models.QueryProfile](profileCacheSize, nil, profileCacheTTL),
	}
}

// Process runs the full pipeline: clean, strip honorifics and connector
// words, transliterate, canonicalize spelling variants, fix spacing, then
// tokenize and build the variant set. Blank input yields an all-empty
// profile, never an error.
func (p *NameProcessor) Process(raw string) models.QueryProfile {
	if cached, ok := p.cache.Get(raw); ok {
		return cached
	}

	profile := models.QueryProfile{
		Original: raw,
		Variants: set.New[string](0),
	}

	cleaned := removeConnectorWords(removeHonorifics(Clean(raw)))
	normalized := Normalize(cleaned)
	tokens := Tokenize(normalized)

	profile.Cleaned = cleaned
	profile.Normalized = normalized
	profile.Tokens = tokens
	profile.Variants = variantsOf(normalized, tokens)

	p.cache.Add(raw, profile)

	return profile
}

// Clean lower-cases, collapses whitespace runs and strips punctuation.
func Clean(text string) string {
	text = strings.ToLower(text)
	text = whitespaceRuns.ReplaceAllString(text, " ")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if !strings.ContainsRune(strippedPunctuation, r) {
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}

// Normalize transliterates non-Latin scripts to a closest-Latin rendering,
// canonicalizes known spelling variants and tightens spacing around hyphens
// and apostrophes.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.TrimSpace(unidecode.Unidecode(text))
	text = alPrefix.ReplaceAllString(text, "al ")
	for _, variant := range spellingVariants {
		text = variant.pattern.ReplaceAllString(text, variant.replacement)
	}
	text = hyphenSpacing.ReplaceAllString(text, "-")
	text = apostropheSpacing.ReplaceAllString(text, "'")

	return text
}

// Tokenize splits on whitespace and hyphens, discarding tokens shorter than
// two characters.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	tokens := make([]string, 0, 8)
	for _, part := range strings.Fields(text) {
		for _, token := range strings.Split(part, "-") {
			if utf8.RuneCountInString(token) >= minTokenLength {
				tokens = append(tokens, token)
			}
		}
	}

	return tokens
}

func removeHonorifics(text string) string {
	return filterWords(text, honorifics)
}

func removeConnectorWords(text string) string {
	return filterWords(text, connectorWords)
}

func filterWords(text string, drop *set.Set[string]) string {
	words := strings.Fields(text)
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if !drop.Contains(word) {
			kept = append(kept, word)
		}
	}
	return strings.Join(kept, " ")
}

// variantsOf is the searchable variant set of a normalized name: the whole
// string, each token, and each adjacent-token bigram.
func variantsOf(normalized string, tokens []string) *set.Set[string] {
	variants := set.New[string](1 + 2*len(tokens))
	if normalized != "" {
		variants.Insert(normalized)
	}
	variants.InsertSlice(tokens)
	for i := 0; i+1 < len(tokens); i++ {
		variants.Insert(tokens[i] + " " + tokens[i+1])
	}
	return variants
}
