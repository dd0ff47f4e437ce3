// Command auth runs the authentication service: registration, login, token
// verification, and guarded role elevation.
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/explora/travel-system/internal/api"
	"github.com/explora/travel-system/internal/infrastructure/db/mongo"
	"github.com/explora/travel-system/internal/infrastructure/db/redis"
	"github.com/explora/travel-system/internal/pkg/config"
	"github.com/explora/travel-system/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "devsecret" {
		log.Warn().Msg("running with the default JWT secret; override JWT_SECRET outside local development")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	e, authService := api.NewAuthRouter(db, rdb, cfg.JWTSecret, cfg.BootstrapToken, log)

	// Indexes and the bootstrap admin account are ensured before the listener
	// opens, so no request ever races first-time initialization.
	if err := authService.Bootstrap(ctx, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("bootstrap failed")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("auth service listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
