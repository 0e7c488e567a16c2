package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/storefront-dev/storefront/db"
	"github.com/storefront-dev/storefront/internal/config"
	"github.com/storefront-dev/storefront/internal/handlers"
	"github.com/storefront-dev/storefront/internal/router"
	"github.com/storefront-dev/storefront/internal/store"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("no .env file found, using process environment")
	}

	cfg, err := config.Load()

	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	logger = newLogger(cfg)
	gin.SetMode(cfg.GinMode)

	conn, err := db.ConnectDatabase(cfg)

	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("failed to connect to database")
	}

	if err = db.MigrateDatabase(conn); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	h := handlers.New(store.New(conn), logger)
	r := router.NewRouter(h, logger, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutdownCompleted := make(chan struct{})

	go func() {
		<-sigChan
		logger.Info().Msg("received shutdown signal")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("server shutdown error")
		}

		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}

		close(shutdownCompleted)
	}()

	logger.Info().Str("addr", srv.Addr).Str("driver", cfg.DBDriver).Msg("server starting")

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("failed to start server")
	}

	<-shutdownCompleted
	logger.Info().Msg("shutdown completed")
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))

	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339

	var logger zerolog.Logger

	if cfg.LogFormat == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stdout)
	}

	return logger.Level(level).With().Timestamp().Str("service", "storefront").Logger()
}
