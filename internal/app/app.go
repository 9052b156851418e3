// Package app wires configuration, logging, the data pipeline and the
// HTTP server into a runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"yieldscan/internal/config"
	"yieldscan/internal/fetch"
	"yieldscan/internal/filter"
	"yieldscan/internal/infrastructure"
	"yieldscan/internal/present"
	"yieldscan/internal/services"
	"yieldscan/internal/store"
	transport "yieldscan/internal/transport/http"
)

// Application holds the assembled components.
type Application struct {
	Config *config.Config
	Logger *slog.Logger
	Server *http.Server
}

// NewApplication loads configuration and assembles the pipeline:
// fetcher -> snapshot cache -> fund service -> router.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	fetcher := fetch.NewFetcher(cfg.Source.URL, cfg.Source.FetchTimeout, logger)
	cache := store.NewCache(fetcher, cfg.Source.CacheTTL, logger)
	engine := filter.NewEngine(filter.TagMode(cfg.Filter.TagMode))
	presenter := present.NewPresenter(cfg.Results.Gated)
	service := services.NewFundService(cache, engine, presenter, cfg.Filter.MaxYield, logger)

	router := transport.NewRouter(service, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Application{
		Config: cfg,
		Logger: logger,
		Server: server,
	}, nil
}

// Run starts the server and blocks until SIGINT/SIGTERM, then shuts down
// gracefully within the configured timeout.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.Logger.InfoContext(ctx, "starting yieldscan",
		slog.Int("port", a.Config.Server.Port),
		slog.String("source_url", a.Config.Source.URL),
		slog.Duration("cache_ttl", a.Config.Source.CacheTTL),
		slog.String("tag_mode", a.Config.Filter.TagMode),
		slog.Bool("gated_results", a.Config.Results.Gated))

	errCh := make(chan error, 1)
	go func() {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	a.Logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	if err := infrastructure.CloseLogFile(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}
