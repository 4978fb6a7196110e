package models

import (
	"time"

	"github.com/hashicorp/go-set/v2"
)

// ListEntry is a raw row from a sanctions list source, before preprocessing.
type ListEntry struct {
	Name      string
	EntityId  string
	Source    ListSource
	ListType  string
	DateAdded time.Time
}

// CandidateRecord is one reference entity from a sanctions list, fully
// preprocessed. Records are read-only once built: a list refresh produces a
// new CandidateList that replaces the old one atomically.
type CandidateRecord struct {
	Name       string
	Normalized string
	Tokens     []string
	Variants   *set.Set[string]
	Source     ListSource
	ListType   string
}

// CandidateList is an immutable snapshot of the consolidated reference data.
type CandidateList struct {
	Records  []CandidateRecord
	Sources  []ListSource
	LoadedAt time.Time
}

func (l CandidateList) Size() int {
	return len(l.Records)
}

// QueryProfile is the preprocessed form of a query name, derived once per
// screening call and discarded afterwards.
type QueryProfile struct {
	Original   string
	Cleaned    string
	Normalized string
	Tokens     []string
	Variants   *set.Set[string]
}

func (q QueryProfile) IsEmpty() bool {
	return q.Normalized == ""
}
