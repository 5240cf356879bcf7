// Package main is the entry point for the flight search validator service.
//
//	@title			Flight Search Validator API
//	@version		1.0.0
//	@description	Validates flight search requests against booking rules and keeps the last accepted search.
//
//	@contact.name	API Support
//	@contact.url	https://github.com/flight-search/flight-search-validator/issues
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/flight-search/flight-search-validator/docs"

	searchhttp "github.com/flight-search/flight-search-validator/internal/adapter/http"
	"github.com/flight-search/flight-search-validator/internal/adapter/http/middleware"
	"github.com/flight-search/flight-search-validator/internal/adapter/store"
	"github.com/flight-search/flight-search-validator/internal/config"
	"github.com/flight-search/flight-search-validator/internal/domain"
	"github.com/flight-search/flight-search-validator/internal/infrastructure/logger"
	"github.com/flight-search/flight-search-validator/internal/infrastructure/metrics"
	"github.com/flight-search/flight-search-validator/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	startupTimeout  = 5 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.IsDevelopment(),
	}).WithInstance(cfg.Validator.InstanceID)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("timezone", cfg.Validator.Timezone).
		Str("store", cfg.Store.Backend).
		Msg("Configuration loaded")

	snapshots, closeStore, err := newSnapshotStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize snapshot store")
	}
	defer closeStore()

	validator := usecase.NewRequestValidator(snapshots, &usecase.Config{
		Location: cfg.Location(),
		Logger:   log,
		Metrics:  metrics.MustNew(prometheus.DefaultRegisterer),
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	handler := searchhttp.NewSearchHandler(validator)
	searchhttp.RegisterRoutes(e, handler, middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RPS,
		Burst:             cfg.RateLimit.Burst,
	}))
	searchhttp.RegisterMetrics(e, prometheus.DefaultGatherer)
	searchhttp.RegisterSwagger(e)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// newSnapshotStore builds the configured store and its cleanup function.
func newSnapshotStore(cfg *config.Config) (domain.SnapshotStore, func(), error) {
	if cfg.Store.Backend != config.StoreRedis {
		return store.NewMemoryStore(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	rs, err := store.NewRedisStore(ctx, store.RedisConfig{
		Addr:       cfg.Store.RedisAddr,
		Password:   cfg.Store.RedisPassword,
		DB:         cfg.Store.RedisDB,
		InstanceID: cfg.Validator.InstanceID,
	})
	if err != nil {
		return nil, nil, err
	}
	return rs, func() { _ = rs.Close() }, nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
