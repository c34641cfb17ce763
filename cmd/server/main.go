package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"golang.org/x/sync/errgroup"

	"github.com/oggyb/matchcore/internal/app"
	"github.com/oggyb/matchcore/internal/cache"
	"github.com/oggyb/matchcore/internal/config"
	"github.com/oggyb/matchcore/internal/db"
	"github.com/oggyb/matchcore/internal/logger"
	"github.com/oggyb/matchcore/internal/metrics"
	"github.com/oggyb/matchcore/internal/server"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L() // slog.Logger pointer

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}); err != nil {
			log.Error("failed to init sentry", "err", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return
	}
	defer redisCache.Close()

	appCtx, err := app.New(cfg, database, redisCache, log, metrics.New())
	if err != nil {
		log.Error("failed to build app context", "err", err)
		return
	}

	if cfg.IsDevelopment() {
		if err := db.SeedTestData(database, log); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return server.StartGRPCServer(ctx, appCtx, server.DefaultRegistrars(appCtx)...) })
	g.Go(func() error { return server.StartMetricsServer(ctx, appCtx) })

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "err", err)
	}
}
