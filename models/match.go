package models

import "github.com/slst/slst-backend/pure_utils"

type MatchType int

const (
	MatchTypeExact MatchType = iota
	MatchTypeFuzzy
	MatchTypeToken
	MatchTypeUnknown
)

func MatchTypeFrom(s string) MatchType {
	switch s {
	case "exact":
		return MatchTypeExact
	case "fuzzy":
		return MatchTypeFuzzy
	case "token":
		return MatchTypeToken
	}

	return MatchTypeUnknown
}

func (t MatchType) String() string {
	switch t {
	case MatchTypeExact:
		return "exact"
	case MatchTypeFuzzy:
		return "fuzzy"
	case MatchTypeToken:
		return "token"
	}

	return "unknown"
}

type RiskLevel int

const (
	RiskLevelNone RiskLevel = iota
	RiskLevelLow
	RiskLevelMedium
	RiskLevelHigh
)

func RiskLevelFrom(s string) RiskLevel {
	switch s {
	case "LOW":
		return RiskLevelLow
	case "MEDIUM":
		return RiskLevelMedium
	case "HIGH":
		return RiskLevelHigh
	}

	return RiskLevelNone
}

func (l RiskLevel) String() string {
	switch l {
	case RiskLevelLow:
		return "LOW"
	case RiskLevelMedium:
		return "MEDIUM"
	case RiskLevelHigh:
		return "HIGH"
	}

	return "NONE"
}

type Confidence int

const (
	ConfidenceLow Confidence = iota
	ConfidenceMedium
	ConfidenceHigh
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceMedium:
		return "MEDIUM"
	case ConfidenceHigh:
		return "HIGH"
	}

	return "LOW"
}

// TokenPair records one accepted query-token to target-token pairing from the
// token matcher.
type TokenPair struct {
	Query  string
	Target string
	Score  float64
}

// MatchRecord is the raw output of one matcher strategy against one candidate.
type MatchRecord struct {
	MatchType  MatchType
	Score      float64
	Breakdown  *pure_utils.SimilarityBreakdown
	TokenPairs []TokenPair
	MatchRatio float64
	IsMatch    bool
	TargetName string
	Source     ListSource
	ListType   string
	Confidence Confidence
}

// ScoredMatch is a MatchRecord annotated with its priority-weighted risk
// score. The scorer mutates matches in place rather than re-creating them.
type ScoredMatch struct {
	MatchRecord
	RiskScore    float64
	RiskLevel    RiskLevel
	Filtered     bool
	FilterReason string
}

type RiskBreakdown struct {
	High   int
	Medium int
	Low    int
}

// ScreeningSummary aggregates the surviving scored matches of one screening.
type ScreeningSummary struct {
	TotalMatches   int
	HighestRisk    RiskLevel
	HighestScore   float64
	RequiresReview bool
	CanAutoClear   bool
	RiskBreakdown  RiskBreakdown
}
