package listsources

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/slst/slst-backend/models"
)

const UN_CONSOLIDATED_URL = "https://scsanctions.un.org/resources/xml/en/consolidated.xml"

// UnFetcher loads the UN Security Council Consolidated List.
type UnFetcher struct {
	client *http.Client
	url    string
}

func NewUnFetcher(client *http.Client) UnFetcher {
	return UnFetcher{client: client, url: UN_CONSOLIDATED_URL}
}

func (f UnFetcher) Source() models.ListSource {
	return models.ListSourceUN
}

type unConsolidatedList struct {
	Individuals []unIndividual `xml:"INDIVIDUALS>INDIVIDUAL"`
	Entities    []unEntity     `xml:"ENTITIES>ENTITY"`
}

type unIndividual struct {
	FirstName  string `xml:"FIRST_NAME"`
	SecondName string `xml:"SECOND_NAME"`
	DataId     string `xml:"DATAID"`
}

type unEntity struct {
	FirstName string `xml:"FIRST_NAME"`
	DataId    string `xml:"DATAID"`
}

func (f UnFetcher) FetchEntries(ctx context.Context) ([]models.ListEntry, error) {
	body, err := download(ctx, f.client, f.url)
	if err != nil {
		return nil, err
	}
	return f.parse(body, time.Now())
}

func (f UnFetcher) parse(body []byte, fetchedAt time.Time) ([]models.ListEntry, error) {
	var list unConsolidatedList
	if err := xml.Unmarshal(body, &list); err != nil {
		return nil, errors.Wrap(err, "could not parse UN consolidated xml")
	}

	entries := make([]models.ListEntry, 0, len(list.Individuals)+len(list.Entities))
	for _, individual := range list.Individuals {
		name := strings.TrimSpace(fmt.Sprintf("%s %s",
			strings.TrimSpace(individual.FirstName),
			strings.TrimSpace(individual.SecondName)))
		if name == "" {
			continue
		}
		entries = append(entries, models.ListEntry{
			Name:      name,
			EntityId:  individual.DataId,
			Source:    models.ListSourceUN,
			ListType:  "Individual",
			DateAdded: fetchedAt,
		})
	}
	for _, entity := range list.Entities {
		name := strings.TrimSpace(entity.FirstName)
		if name == "" {
			continue
		}
		entries = append(entries, models.ListEntry{
			Name:      name,
			EntityId:  entity.DataId,
			Source:    models.ListSourceUN,
			ListType:  "Entity",
			DateAdded: fetchedAt,
		})
	}

	if len(entries) == 0 {
		return nil, errors.New("no names extracted from UN list")
	}
	return entries, nil
}
