package usecases

import (
	"context"

	"github.com/slst/slst-backend/models"
	"github.com/slst/slst-backend/usecases/ingestion"
	"github.com/slst/slst-backend/utils"
)

// candidateListStore is the read-write view of the snapshot holder; the
// screening side only ever sees the read half.
type candidateListStore interface {
	Current() models.CandidateList
	Swap(list models.CandidateList)
}

// ListRefreshUsecase reloads the sanctions lists and swaps the candidate
// snapshot. Screenings in flight keep the snapshot they started with.
type ListRefreshUsecase struct {
	manager *ingestion.ListManager
	store   candidateListStore
}

func NewListRefreshUsecase(manager *ingestion.ListManager, store candidateListStore) *ListRefreshUsecase {
	return &ListRefreshUsecase{
		manager: manager,
		store:   store,
	}
}

func (uc *ListRefreshUsecase) RefreshLists(ctx context.Context) (models.CandidateList, error) {
	list, err := uc.manager.LoadAll(ctx)
	if err != nil {
		return models.CandidateList{}, err
	}

	uc.store.Swap(list)
	utils.LoggerFromContext(ctx).InfoContext(ctx, "candidate list refreshed",
		"records", list.Size(), "sources", len(list.Sources))
	return list, nil
}

// Status returns the active snapshot, or ErrCandidateListNotLoaded before
// the first successful refresh.
func (uc *ListRefreshUsecase) Status() (models.CandidateList, error) {
	list := uc.store.Current()
	if list.LoadedAt.IsZero() {
		return models.CandidateList{}, models.ErrCandidateListNotLoaded
	}
	return list, nil
}
