package feeds

import (
	"context"
	"fmt"
	"log/slog"

	"patiodash/internal/config"
	"patiodash/internal/domain"
	"patiodash/internal/feed"
	"patiodash/internal/ports"
)

// SheetFeed implements RecordFeed for one configured sheet via a registered
// strategy.
type SheetFeed struct {
	registry *feed.Registry
	name     string
	cfg      config.FeedConfig
	logger   *slog.Logger
}

var _ ports.RecordFeed = (*SheetFeed)(nil)

// NewSheetFeed binds a strategy registry to one feed's configuration.
func NewSheetFeed(reg *feed.Registry, name string, cfg config.FeedConfig, log *slog.Logger) *SheetFeed {
	return &SheetFeed{registry: reg, name: name, cfg: cfg, logger: log}
}

// Fetch resolves the configured strategy and pulls the sheet's current rows.
func (s *SheetFeed) Fetch(ctx context.Context) ([]domain.Record, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("feed %s: strategy registry is not configured", s.name)
	}

	strategy, err := s.registry.Resolve(s.cfg.Strategy)
	if err != nil {
		return nil, fmt.Errorf("feed %s: %w", s.name, err)
	}

	rows, err := strategy.Fetch(ctx, feed.Request{FeedName: s.name, URL: s.cfg.URL})
	if err != nil {
		return nil, err
	}

	s.debug("sheet fetched", "feed", s.name, "strategy", strategy.Name(), "rows", len(rows))
	return rows, nil
}

func (s *SheetFeed) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
