package models

import "time"

// ScreeningResult is the full outcome of screening one query name: the ranked
// surviving matches, the aggregate summary, and the compliance decision.
type ScreeningResult struct {
	Id            string
	Query         string
	Profile       QueryProfile
	Matches       []ScoredMatch
	FilteredCount int
	Summary       ScreeningSummary
	Decision      Decision
	AppliedRule   string
	Duration      time.Duration
}
