package feeds

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"patiodash/internal/domain"
	"patiodash/internal/feed"
)

// HTMLStrategy pulls the published-HTML (pubhtml) table export of a sheet.
// Some deployments publish only this format; the first table on the page is
// read the same way the CSV export is: first data row is the header,
// subsequent rows map positionally.
type HTMLStrategy struct {
	client *http.Client
}

var _ feed.Strategy = (*HTMLStrategy)(nil)

// NewHTMLStrategy wires an HTTP client; nil gets a 20s-timeout default.
func NewHTMLStrategy(client *http.Client) *HTMLStrategy {
	return &HTMLStrategy{client: defaultClient(client)}
}

// Name identifies the strategy inside the registry.
func (s *HTMLStrategy) Name() string {
	return "html"
}

// Fetch downloads the page and extracts records from its first table.
func (s *HTMLStrategy) Fetch(ctx context.Context, req feed.Request) ([]domain.Record, error) {
	body, err := fetchBody(ctx, s.client, req.URL)
	if err != nil {
		return nil, fmt.Errorf("feed %s: %w", req.FeedName, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("feed %s: parse document: %w", req.FeedName, err)
	}

	return extractTable(doc), nil
}

// extractTable walks the rows of the first table. Cells come from td
// elements only: pubhtml renders its row-number gutter as th, which must
// not shift the data columns. The first row carrying any non-empty td is
// the header.
func extractTable(doc *goquery.Document) []domain.Record {
	var (
		headers []string
		records = []domain.Record{}
	)

	doc.Find("table").First().Find("tr").Each(func(_ int, tr *goquery.Selection) {
		values := rowValues(tr)
		if values == nil {
			return
		}

		if headers == nil {
			headers = values
			return
		}

		rec := make(domain.Record, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(values) {
				rec[h] = values[i]
			}
		}
		records = append(records, rec)
	})

	return records
}

func rowValues(tr *goquery.Selection) []string {
	var (
		values   []string
		nonEmpty bool
	)
	tr.Find("td").Each(func(_ int, td *goquery.Selection) {
		v := strings.TrimSpace(td.Text())
		if v != "" {
			nonEmpty = true
		}
		values = append(values, v)
	})
	if !nonEmpty {
		return nil
	}
	return values
}
