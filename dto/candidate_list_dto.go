package dto

import (
	"time"

	"github.com/slst/slst-backend/models"
	"github.com/slst/slst-backend/pure_utils"
)

type APIListStatus struct {
	Records  int       `json:"records"`
	Sources  []string  `json:"sources"`
	LoadedAt time.Time `json:"loaded_at"`
}

func AdaptAPIListStatus(list models.CandidateList) APIListStatus {
	return APIListStatus{
		Records: list.Size(),
		Sources: pure_utils.Map(list.Sources, func(source models.ListSource) string {
			return source.String()
		}),
		LoadedAt: list.LoadedAt,
	}
}
