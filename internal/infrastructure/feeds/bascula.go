package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"patiodash/internal/domain"
	"patiodash/internal/ports"
)

// BasculaFeed pulls the weighing-station JSON feed: a body of shape
// {"rows":[{...},...]} whose values may arrive as strings or numbers.
type BasculaFeed struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

var _ ports.RecordFeed = (*BasculaFeed)(nil)

// NewBasculaFeed binds the feed URL; a nil client gets a 20s-timeout
// default.
func NewBasculaFeed(url string, client *http.Client, log *slog.Logger) *BasculaFeed {
	return &BasculaFeed{url: url, client: defaultClient(client), logger: log}
}

// Fetch downloads and decodes the current rows. Non-2xx status or malformed
// JSON surface as errors for the caller to convert into an empty result
// plus message.
func (b *BasculaFeed) Fetch(ctx context.Context) ([]domain.Record, error) {
	body, err := fetchBody(ctx, b.client, b.url)
	if err != nil {
		return nil, fmt.Errorf("bascula: %w", err)
	}

	var payload struct {
		Rows []map[string]any `json:"rows"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("bascula: decode json: %w", err)
	}

	rows := make([]domain.Record, 0, len(payload.Rows))
	for _, raw := range payload.Rows {
		rec := make(domain.Record, len(raw))
		for k, v := range raw {
			rec[k] = stringify(v)
		}
		rows = append(rows, rec)
	}

	if b.logger != nil {
		b.logger.Debug("bascula fetched", "rows", len(rows))
	}
	return rows, nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
