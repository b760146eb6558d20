package app

import (
	"context"
	"log/slog"

	"patiodash/internal/aggregate"
	"patiodash/internal/classify"
	"patiodash/internal/config"
	"patiodash/internal/feed"
	"patiodash/internal/infrastructure/feeds"
	"patiodash/internal/infrastructure/httpapi"
	"patiodash/internal/infrastructure/scheduler"
	"patiodash/internal/infrastructure/telegram"
	"patiodash/internal/logging"
	"patiodash/internal/ports"
	"patiodash/internal/procorder"
	"patiodash/internal/staleness"
	"patiodash/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg       config.Config
	scheduler *usecase.Scheduler
	server    *httpapi.Server
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := feed.NewRegistry()
	registry.Register(feeds.NewCSVStrategy(nil))
	registry.Register(feeds.NewHTMLStrategy(nil))

	loc := cfg.Refresh.Location()

	bascula := feeds.NewBasculaFeed(cfg.Feeds.Bascula.URL, nil, baseLogger.With("component", "feed.bascula"))
	general := feeds.NewSheetFeed(registry, "general", cfg.Feeds.General, baseLogger.With("component", "feed.general"))
	fechas := feeds.NewSheetFeed(registry, "fechas", cfg.Feeds.Fechas, baseLogger.With("component", "feed.fechas"))

	builder := usecase.NewSnapshotBuilder(
		classify.New(cfg.Classifier.RobustaClients, cfg.Classifier.RobustaPatios),
		procorder.New(cfg.General.ProcessOrder),
		staleness.New(cfg.Alerting.Days, loc),
		loc,
	)
	store := usecase.NewStore()

	var notifier ports.Notifier
	if cfg.Alerting.Telegram.BotToken != "" && cfg.Alerting.Telegram.ChatID != "" {
		notifier = telegram.NewNotifier(cfg.Alerting.Telegram)
	}

	refresher := usecase.NewRefresher(usecase.RefresherDeps{
		Bascula:  bascula,
		General:  general,
		Fechas:   fechas,
		Builder:  builder,
		Store:    store,
		Notifier: notifier,
		Logger:   baseLogger.With("component", "refresh"),
	})

	driver := scheduler.NewIntervalScheduler(cfg.Refresh.Every())
	server := httpapi.New(store, builder, aggregate.NewFormatter(), loc, baseLogger.With("component", "http"))

	return &Application{
		cfg:       cfg,
		scheduler: usecase.NewScheduler(driver, refresher),
		server:    server,
	}
}

// Run starts the refresh loop and serves the API until ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	if err := a.scheduler.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = a.scheduler.Stop(context.Background()) }()

	return a.server.Run(ctx, a.cfg.HTTP.Addr)
}
