package listsources

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slst/slst-backend/models"
)

func TestOfacParse(t *testing.T) {
	csv := `1001,"SMITH, John",individual,SDN
1002,"EASTERN TRADING CO.",entity,SDN
1003,,entity,SDN
1004`

	fetchedAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	entries, err := OfacFetcher{}.parse([]byte(csv), fetchedAt)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, models.ListEntry{
		Name:      "SMITH, John",
		EntityId:  "1001",
		Source:    models.ListSourceOFAC,
		ListType:  "SDN",
		DateAdded: fetchedAt,
	}, entries[0])
	assert.Equal(t, "EASTERN TRADING CO.", entries[1].Name)
}

func TestUnParse(t *testing.T) {
	xml := `<?xml version="1.0" encoding="UTF-8"?>
<CONSOLIDATED_LIST>
  <INDIVIDUALS>
    <INDIVIDUAL>
      <DATAID>6908555</DATAID>
      <FIRST_NAME>ABDUL</FIRST_NAME>
      <SECOND_NAME>RAHMAN</SECOND_NAME>
    </INDIVIDUAL>
    <INDIVIDUAL>
      <DATAID>6908556</DATAID>
      <FIRST_NAME></FIRST_NAME>
      <SECOND_NAME></SECOND_NAME>
    </INDIVIDUAL>
  </INDIVIDUALS>
  <ENTITIES>
    <ENTITY>
      <DATAID>110222</DATAID>
      <FIRST_NAME>EASTERN FOUNDATION</FIRST_NAME>
    </ENTITY>
  </ENTITIES>
</CONSOLIDATED_LIST>`

	fetchedAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	entries, err := UnFetcher{}.parse([]byte(xml), fetchedAt)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "ABDUL RAHMAN", entries[0].Name)
	assert.Equal(t, "6908555", entries[0].EntityId)
	assert.Equal(t, "Individual", entries[0].ListType)
	assert.Equal(t, models.ListSourceUN, entries[0].Source)
	assert.Equal(t, "EASTERN FOUNDATION", entries[1].Name)
	assert.Equal(t, "Entity", entries[1].ListType)
}

func TestUnParseEmptyList(t *testing.T) {
	xml := `<CONSOLIDATED_LIST><INDIVIDUALS></INDIVIDUALS></CONSOLIDATED_LIST>`

	_, err := UnFetcher{}.parse([]byte(xml), time.Now())
	assert.Error(t, err)
}
