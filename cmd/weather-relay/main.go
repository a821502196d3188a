package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httpapi "github.com/i474232898/weather-motion-relay/internal/api/http"
	"github.com/i474232898/weather-motion-relay/internal/config"
	"github.com/i474232898/weather-motion-relay/internal/forecast"
	"github.com/i474232898/weather-motion-relay/internal/forecast/providers"
	"github.com/i474232898/weather-motion-relay/internal/logging"
	"github.com/i474232898/weather-motion-relay/internal/metrics"
	"github.com/i474232898/weather-motion-relay/internal/motion"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Shared HTTP client for outbound feed calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	provider := providers.NewTsukumijimaProvider(httpClient, cfg.UpstreamBaseURL, cfg.CityID, providers.BreakerConfig{
		MaxFailures: cfg.BreakerMaxFailures,
		OpenTimeout: cfg.BreakerOpenTimeout,
	}, logger.Named("upstream"))

	m := metrics.New("weather_relay")
	service := forecast.NewService(provider, motion.NewTracker(nil), m, logger.Named("forecast"))

	app := httpapi.NewApp(m, logger.Named("http"))
	httpapi.RegisterRoutes(app, service, m, logger.Named("http"))

	go func() {
		logger.Info("weather relay listening",
			zap.String("port", cfg.Port),
			zap.String("upstream", cfg.UpstreamBaseURL),
			zap.String("city", cfg.CityID),
		)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("fiber server stopped", zap.Error(err))
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("error during shutdown", zap.Error(err))
	}
}
