package listsources

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"

	"github.com/slst/slst-backend/models"
)

const (
	userAgent    = "SLST-Compliance-Tool/1.0"
	acceptHeader = "application/xml,text/csv,*/*"

	downloadAttempts = 3
	downloadDelay    = 500 * time.Millisecond
)

// Fetcher downloads one sanctions list and parses it into raw entries. The
// entries are not yet normalized; that is the ingestion manager's job.
type Fetcher interface {
	Source() models.ListSource
	FetchEntries(ctx context.Context) ([]models.ListEntry, error)
}

// download fetches a list document with retries. Sanctions list endpoints
// are rate-limited and flaky enough that a single attempt is not reliable.
func download(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	var body []byte

	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("User-Agent", userAgent)
			req.Header.Set("Accept", acceptHeader)

			resp, err := client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return errors.Newf("unexpected status %d from %s", resp.StatusCode, url)
			}

			body, err = io.ReadAll(resp.Body)
			return err
		},
		retry.Attempts(downloadAttempts),
		retry.LastErrorOnly(true),
		retry.Delay(downloadDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.Context(ctx),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "could not download %s", url)
	}
	return body, nil
}
