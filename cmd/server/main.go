// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/productrec/internal/api"
	"github.com/tomtom215/productrec/internal/cache"
	"github.com/tomtom215/productrec/internal/config"
	"github.com/tomtom215/productrec/internal/dataset"
	"github.com/tomtom215/productrec/internal/logging"
	"github.com/tomtom215/productrec/internal/metrics"
	"github.com/tomtom215/productrec/internal/supervisor"
	"github.com/tomtom215/productrec/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("products_path", cfg.Data.ProductsPath).
		Str("interactions_path", cfg.Data.InteractionsPath).
		Dur("reload_interval", cfg.Data.ReloadInterval).
		Msg("Starting productrec")

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin")
	}

	// The service cannot run without a first snapshot.
	snap, err := dataset.LoadSnapshot(cfg.Data.ProductsPath, cfg.Data.InteractionsPath,
		cfg.Recommend, logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build recommendation engine")
	}

	holder := dataset.NewHolder()
	version := holder.Swap(snap)
	metrics.RecordSnapshot(snap.Engine.Stats())
	logging.Info().
		Uint64("version", version).
		Str("cache_scope", snap.CacheScope()).
		Msg("Recommendation snapshot installed")

	recCache := cache.New(cfg.Cache, logging.WithComponent("cache"))
	defer func() {
		if err := recCache.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing recommendation cache")
		}
	}()

	handler := api.NewHandler(holder, recCache)
	router := api.NewRouter(handler,
		api.NewChiMiddleware(api.NewChiMiddlewareConfig(cfg.Security)),
		logging.WithComponent("http"))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))
	if cfg.Data.ReloadInterval > 0 {
		tree.AddDataService(services.NewReloadService(holder, services.ReloadConfig{
			Interval:         cfg.Data.ReloadInterval,
			ProductsPath:     cfg.Data.ProductsPath,
			InteractionsPath: cfg.Data.InteractionsPath,
			Recommend:        cfg.Recommend,
		}, logging.WithComponent("reload")))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
