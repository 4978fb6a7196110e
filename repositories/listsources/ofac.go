package listsources

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/slst/slst-backend/models"
)

const OFAC_SDN_URL = "https://www.treasury.gov/ofac/downloads/sdn.csv"

// OfacFetcher loads the OFAC Specially Designated Nationals list. The SDN
// CSV carries the entity id in the first column and the name in the second.
type OfacFetcher struct {
	client *http.Client
	url    string
}

func NewOfacFetcher(client *http.Client) OfacFetcher {
	return OfacFetcher{client: client, url: OFAC_SDN_URL}
}

func (f OfacFetcher) Source() models.ListSource {
	return models.ListSourceOFAC
}

func (f OfacFetcher) FetchEntries(ctx context.Context) ([]models.ListEntry, error) {
	body, err := download(ctx, f.client, f.url)
	if err != nil {
		return nil, err
	}
	return f.parse(body, time.Now())
}

func (f OfacFetcher) parse(body []byte, fetchedAt time.Time) ([]models.ListEntry, error) {
	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "could not parse OFAC SDN csv")
	}

	entries := make([]models.ListEntry, 0, len(records))
	for _, record := range records {
		if len(record) < 2 {
			continue
		}
		name := strings.TrimSpace(record[1])
		if name == "" {
			continue
		}
		entries = append(entries, models.ListEntry{
			Name:      name,
			EntityId:  strings.TrimSpace(record[0]),
			Source:    models.ListSourceOFAC,
			ListType:  "SDN",
			DateAdded: fetchedAt,
		})
	}
	return entries, nil
}
