// Package app wires configuration into the running service.
package app

import (
	"context"
	"fmt"

	pwcfg "pitwall/internal/config"
	"pitwall/internal/gateway/jolpica"
	"pitwall/internal/gateway/provider"
	"pitwall/internal/logger"
	"pitwall/internal/prices"
	"pitwall/internal/results"
	resultscache "pitwall/internal/results/cache"
	"pitwall/internal/strategy"
	"pitwall/internal/transport/httpapi"

	"golang.org/x/sync/errgroup"
)

// App owns the assembled components. Build constructs, Run serves.
type App struct {
	cfg    *pwcfg.Config
	prices *prices.Store
	server *httpapi.Server
}

// New builds the application from config without starting anything.
func New(ctx context.Context, cfg *pwcfg.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	logger.SetLevel(cfg.App.LogLevel)

	store := prices.NewStore()
	if path := cfg.Prices.OverridesPath; path != "" {
		if err := store.ApplyOverrides(path); err != nil {
			return nil, err
		}
	}

	source, err := jolpica.NewClient(cfg.Results)
	if err != nil {
		return nil, err
	}
	var aggOpts []results.Option
	if cfg.Results.CachePath != "" {
		rounds, err := resultscache.Open(cfg.Results.CachePath)
		if err != nil {
			return nil, err
		}
		aggOpts = append(aggOpts, results.WithRoundCache(rounds))
		logger.Infof("round cache at %s", cfg.Results.CachePath)
	}
	aggregator := results.NewAggregator(source, aggOpts...)

	model, err := provider.Build(ctx, cfg.AI)
	if err != nil {
		return nil, err
	}

	svc := strategy.NewService(store, aggregator, model, cfg.Season.Year)
	server, err := httpapi.NewServer(httpapi.ServerConfig{
		Addr:     cfg.App.HTTPAddr,
		Prices:   store,
		Strategy: svc,
		Season:   cfg.Season.Year,
	})
	if err != nil {
		return nil, err
	}
	return &App{cfg: cfg, prices: store, server: server}, nil
}

// Run serves HTTP (and the price override watcher) until ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.cfg == nil {
		return fmt.Errorf("app not initialized")
	}
	if a.cfg.Prices.Watch && a.cfg.Prices.OverridesPath != "" {
		if err := a.prices.WatchOverrides(ctx, a.cfg.Prices.OverridesPath); err != nil {
			return err
		}
	}
	logger.Infof("pitwall listening on %s (season %d)", a.server.Addr(), a.cfg.Season.Year)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := a.server.Start(ctx); err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})
	return group.Wait()
}
