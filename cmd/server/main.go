package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/workpulse/workpulse-api/internal/api"
	"github.com/workpulse/workpulse-api/internal/core/service"
	"github.com/workpulse/workpulse-api/internal/infrastructure/config"
	mongodb "github.com/workpulse/workpulse-api/internal/infrastructure/db/mongo"
	redisdb "github.com/workpulse/workpulse-api/internal/infrastructure/db/redis"
	"github.com/workpulse/workpulse-api/internal/infrastructure/queue"
	"github.com/workpulse/workpulse-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// The signing secret has no default. Refusing to start beats silently
	// issuing tokens nobody can trust.
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Backing stores ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := activityRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create activity indexes")
	}

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo, log)
	dedup := redisdb.NewSnapshotDedup(rdb)
	activityService := service.NewActivityService(activityRepo, dedup, cfg.ActivityPageLimit, log)

	dispatcher := queue.NewDispatcher(cfg.IngestWorkers, activityService, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		Tokens:     tokens,
		Auth:       authService,
		Users:      userService,
		Activities: activityService,
		Dispatcher: dispatcher,
		Mongo:      db,
		Redis:      rdb,
		Logger:     log,
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Info().Err(err).Msg("server stopped")
	}
}
