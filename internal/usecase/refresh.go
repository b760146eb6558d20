package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"patiodash/internal/filter"
	"patiodash/internal/ports"
)

// RefresherDeps wires the feeds and consumers into the refresh cycle.
type RefresherDeps struct {
	Bascula  ports.RecordFeed
	General  ports.RecordFeed
	Fechas   ports.RecordFeed
	Builder  *SnapshotBuilder
	Store    *Store
	Notifier ports.Notifier
	Logger   *slog.Logger
}

// Refresher runs one full poll cycle: fetch all three sources concurrently,
// replace the stored datasets wholesale, and push staleness alerts.
type Refresher struct {
	bascula  ports.RecordFeed
	general  ports.RecordFeed
	fechas   ports.RecordFeed
	builder  *SnapshotBuilder
	store    *Store
	notifier ports.Notifier
	logger   *slog.Logger
	busy     atomic.Bool
}

// NewRefresher constructs the orchestration component.
func NewRefresher(deps RefresherDeps) *Refresher {
	return &Refresher{
		bascula:  deps.Bascula,
		general:  deps.General,
		fechas:   deps.Fechas,
		builder:  deps.Builder,
		store:    deps.Store,
		notifier: deps.Notifier,
		logger:   deps.Logger,
	}
}

// Refresh executes one cycle. The three fetches run concurrently and each
// failure is converted into an empty result plus error, so one source going
// down never cancels the others and the join itself cannot fail. A cycle
// arriving while the previous one is still in flight is skipped; the next
// tick reloads everything anyway.
func (r *Refresher) Refresh(ctx context.Context, now time.Time) {
	if !r.busy.CompareAndSwap(false, true) {
		r.log(slog.LevelWarn, "refresh still in flight, skipping tick")
		return
	}
	defer r.busy.Store(false)

	var basRes, genRes, fecRes SourceResult

	var g errgroup.Group
	g.Go(func() error { basRes = fetchSource(ctx, r.bascula); return nil })
	g.Go(func() error { genRes = fetchSource(ctx, r.general); return nil })
	g.Go(func() error { fecRes = fetchSource(ctx, r.fechas); return nil })
	_ = g.Wait()

	r.store.Update(basRes, genRes, fecRes, now)

	for name, res := range map[string]SourceResult{"bascula": basRes, "general": genRes, "fechas": fecRes} {
		if res.Err != nil {
			r.log(slog.LevelError, "source failed", "feed", name, "error", res.Err)
		} else {
			r.log(slog.LevelDebug, "source loaded", "feed", name, "rows", len(res.Rows))
		}
	}

	r.publishAlerts(ctx, genRes, fecRes, now)
}

func (r *Refresher) publishAlerts(ctx context.Context, gen, fechas SourceResult, now time.Time) {
	if r.notifier == nil {
		return
	}

	summary := r.builder.General(gen, fechas, filter.General{}, now)
	digest := ""
	for _, patio := range summary.Patios {
		if patio.Staleness == nil || !patio.Staleness.Alert {
			continue
		}
		digest += fmt.Sprintf("⚠️ %s: %d días sin recibir, última el %s\n",
			patio.Patio,
			patio.Staleness.DaysElapsed,
			patio.Staleness.LastSeen.Format("02/01/2006 15:04"))
	}
	if digest == "" {
		return
	}

	if err := r.notifier.PublishAlerts(ctx, digest); err != nil {
		r.log(slog.LevelError, "publish alerts", "error", err)
	}
}

func fetchSource(ctx context.Context, f ports.RecordFeed) SourceResult {
	if f == nil {
		return SourceResult{}
	}
	rows, err := f.Fetch(ctx)
	if err != nil {
		return SourceResult{Err: err}
	}
	return SourceResult{Rows: rows}
}

func (r *Refresher) log(level slog.Level, msg string, args ...any) {
	if r.logger != nil {
		r.logger.Log(context.Background(), level, msg, args...)
	}
}
