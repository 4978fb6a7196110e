package models

import "github.com/cockroachdb/errors"

// MatchThresholds holds the fuzzy-match and risk classification cutoffs, on a
// 0-100 scale. The defaults are compliance policy values; overriding them is a
// configuration change, not a code change.
type MatchThresholds struct {
	High          float64
	Medium        float64
	Low           float64
	MinNameLength int
}

func DefaultMatchThresholds() MatchThresholds {
	return MatchThresholds{
		High:          85,
		Medium:        70,
		Low:           60,
		MinNameLength: 3,
	}
}

func (t MatchThresholds) Validate() error {
	if t.High <= t.Medium {
		return errors.New("high threshold must be greater than medium threshold")
	}
	if t.Medium <= t.Low {
		return errors.New("medium threshold must be greater than low threshold")
	}
	if t.Low <= 0 || t.High > 100 {
		return errors.New("thresholds must be within (0, 100]")
	}
	if t.MinNameLength < 1 {
		return errors.New("minimum name length must be at least 1")
	}
	return nil
}

// RiskLevelFor buckets a 0-100 score into a coarse risk level.
func (t MatchThresholds) RiskLevelFor(score float64) RiskLevel {
	switch {
	case score >= t.High:
		return RiskLevelHigh
	case score >= t.Medium:
		return RiskLevelMedium
	case score >= t.Low:
		return RiskLevelLow
	}

	return RiskLevelNone
}

// ConfidenceFor tags a fuzzy match level with the confidence reported on the
// match record.
func ConfidenceFor(level RiskLevel) Confidence {
	switch level {
	case RiskLevelHigh:
		return ConfidenceHigh
	case RiskLevelMedium:
		return ConfidenceMedium
	}

	return ConfidenceLow
}
