package app

import (
	"context"
	"log/slog"

	"TechPulse/internal/config"
	"TechPulse/internal/infrastructure/firecrawl"
	"TechPulse/internal/infrastructure/parser"
	"TechPulse/internal/infrastructure/scheduler"
	"TechPulse/internal/infrastructure/storage"
	"TechPulse/internal/infrastructure/telegram"
	"TechPulse/internal/logging"
	"TechPulse/internal/ports"
	"TechPulse/internal/scanner"
	"TechPulse/internal/server"
	"TechPulse/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	server    *server.Server
	refresher *usecase.Refresher
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := scanner.NewRegistry()
	registry.Register(parser.NewSiteScanner(nil))

	source := parser.NewStrategySource(registry, cfg.Site, baseLogger.With("component", "source"))

	var extractor ports.Extractor
	if cfg.FireCrawl.APIKey != "" {
		extractor = firecrawl.NewClient(cfg.FireCrawl)
	}

	var store ports.ArticleStore
	if cfg.Database.DSN != "" {
		db, err := storage.Open(cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		store = storage.NewPostgresRepository(db)
	}

	var notifier ports.Notifier
	if cfg.Notifications.Telegram.BotToken != "" {
		notifier = telegram.NewNotifier(cfg.Notifications.Telegram.BotToken, cfg.Notifications.Telegram.ChatID)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Extractor: extractor,
		Source:    source,
		Store:     store,
		Notifier:  notifier,
		Headlines: parser.ExtractHeadlines,
		SiteURL:   cfg.Site.URL,
		Persist:   cfg.Refresh.Persist,
		Logger:    baseLogger.With("component", "pipeline"),
	})

	dashboard := usecase.NewDashboard(store)

	handler := server.NewHandler(pipeline, dashboard, store, baseLogger.With("component", "api"))
	srv := server.New(handler, cfg.Server.Port, cfg.Server.Debug, baseLogger.With("component", "server"))

	var refresher *usecase.Refresher
	if cfg.Refresh.Enabled {
		driver := scheduler.NewCronScheduler(cfg.Refresh.CronExpression, cfg.Refresh.Location())
		refresher = usecase.NewRefresher(driver, pipeline, baseLogger.With("component", "refresher"))
	}

	return &Application{
		cfg:       cfg,
		logger:    baseLogger,
		server:    srv,
		refresher: refresher,
	}, nil
}

// Run starts the optional refresh schedule and serves HTTP until the
// context is cancelled.
func (a *Application) Run(ctx context.Context) error {
	if a.refresher != nil {
		if err := a.refresher.Start(ctx); err != nil {
			return err
		}
		defer func() {
			_ = a.refresher.Stop(context.Background())
		}()
	}

	return a.server.Run(ctx)
}
