package feeds

import (
	"context"
	"fmt"
	"net/http"

	"patiodash/internal/domain"
	"patiodash/internal/feed"
	"patiodash/internal/tabular"
)

// CSVStrategy pulls the published CSV export of a sheet.
type CSVStrategy struct {
	client *http.Client
}

var _ feed.Strategy = (*CSVStrategy)(nil)

// NewCSVStrategy wires an HTTP client; nil gets a 20s-timeout default.
func NewCSVStrategy(client *http.Client) *CSVStrategy {
	return &CSVStrategy{client: defaultClient(client)}
}

// Name identifies the strategy inside the registry.
func (s *CSVStrategy) Name() string {
	return "csv"
}

// Fetch downloads the export and parses it into records.
func (s *CSVStrategy) Fetch(ctx context.Context, req feed.Request) ([]domain.Record, error) {
	body, err := fetchBody(ctx, s.client, req.URL)
	if err != nil {
		return nil, fmt.Errorf("feed %s: %w", req.FeedName, err)
	}
	return tabular.Parse(string(body)), nil
}
