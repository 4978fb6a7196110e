package usecases

import (
	"github.com/slst/slst-backend/models"
	"github.com/slst/slst-backend/repositories"
	"github.com/slst/slst-backend/repositories/listsources"
	"github.com/slst/slst-backend/usecases/flagging"
	"github.com/slst/slst-backend/usecases/ingestion"
	"github.com/slst/slst-backend/usecases/matching"
	"github.com/slst/slst-backend/usecases/preprocessing"
)

// Usecases bundles the wired screening and list-refresh entry points for the
// API and CLI surfaces.
type Usecases struct {
	Screening   *ScreeningUsecase
	ListRefresh *ListRefreshUsecase
	Audit       *AuditUsecase
}

func NewUsecases(
	thresholds models.MatchThresholds,
	audit AuditTrail,
	maxBatchSize int,
	fetchers ...listsources.Fetcher,
) Usecases {
	processor := preprocessing.NewNameProcessor()
	store := repositories.NewCandidateListRepository()

	return Usecases{
		Screening: NewScreeningUsecase(
			processor,
			matching.NewMatchingEngine(thresholds),
			flagging.NewFlaggingEngine(),
			store,
			audit,
			maxBatchSize,
		),
		ListRefresh: NewListRefreshUsecase(
			ingestion.NewListManager(processor, fetchers...),
			store,
		),
		Audit: NewAuditUsecase(audit),
	}
}
