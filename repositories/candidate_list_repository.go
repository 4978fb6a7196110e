package repositories

import (
	"sync/atomic"

	"github.com/slst/slst-backend/models"
)

// CandidateListRepository holds the current reference-data snapshot. Readers
// always see one fully formed list; a refresh swaps the pointer atomically
// and in-flight screenings keep the snapshot they already acquired.
type CandidateListRepository struct {
	snapshot atomic.Pointer[models.CandidateList]
}

func NewCandidateListRepository() *CandidateListRepository {
	return &CandidateListRepository{}
}

// Current returns the active snapshot, or an empty list before the first load.
func (repo *CandidateListRepository) Current() models.CandidateList {
	if list := repo.snapshot.Load(); list != nil {
		return *list
	}
	return models.CandidateList{}
}

func (repo *CandidateListRepository) Swap(list models.CandidateList) {
	repo.snapshot.Store(&list)
}
