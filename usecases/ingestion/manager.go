package ingestion

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-set/v2"

	"github.com/slst/slst-backend/models"
	"github.com/slst/slst-backend/repositories/listsources"
	"github.com/slst/slst-backend/usecases/preprocessing"
	"github.com/slst/slst-backend/utils"
)

// ListManager downloads every configured sanctions list, consolidates the
// entries and produces the immutable candidate snapshot the screening core
// reads from. A source that fails to load is skipped; the refresh only fails
// when every source does.
type ListManager struct {
	fetchers  []listsources.Fetcher
	processor *preprocessing.NameProcessor
}

func NewListManager(processor *preprocessing.NameProcessor, fetchers ...listsources.Fetcher) *ListManager {
	return &ListManager{
		fetchers:  fetchers,
		processor: processor,
	}
}

func (m *ListManager) LoadAll(ctx context.Context) (models.CandidateList, error) {
	logger := utils.LoggerFromContext(ctx)

	var entries []models.ListEntry
	var loaded []models.ListSource
	var failures []string

	for _, fetcher := range m.fetchers {
		source := fetcher.Source()
		logger.InfoContext(ctx, "loading sanctions list", "source", source.String())

		sourceEntries, err := fetcher.FetchEntries(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "failed to load sanctions list",
				"source", source.String(), "error", err)
			failures = append(failures, source.String())
			continue
		}

		logger.InfoContext(ctx, "sanctions list loaded",
			"source", source.String(), "entries", len(sourceEntries))
		entries = append(entries, sourceEntries...)
		loaded = append(loaded, source)
	}

	if len(loaded) == 0 {
		return models.CandidateList{}, errors.Newf(
			"all list sources failed: %s", strings.Join(failures, ", "))
	}

	return m.consolidate(entries, loaded), nil
}

// consolidate deduplicates by display name, keeping the first occurrence so
// higher-priority sources win, then precomputes the comparable forms.
func (m *ListManager) consolidate(entries []models.ListEntry, loaded []models.ListSource) models.CandidateList {
	seen := set.New[string](len(entries))
	records := make([]models.CandidateRecord, 0, len(entries))

	for _, entry := range entries {
		if seen.Contains(entry.Name) {
			continue
		}
		seen.Insert(entry.Name)

		profile := m.processor.Process(entry.Name)
		records = append(records, models.CandidateRecord{
			Name:       entry.Name,
			Normalized: profile.Normalized,
			Tokens:     profile.Tokens,
			Variants:   profile.Variants,
			Source:     entry.Source,
			ListType:   entry.ListType,
		})
	}

	return models.CandidateList{
		Records:  records,
		Sources:  loaded,
		LoadedAt: time.Now(),
	}
}
