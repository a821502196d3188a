package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/i474232898/weather-motion-relay/internal/config"
	"github.com/i474232898/weather-motion-relay/internal/display"
	"github.com/i474232898/weather-motion-relay/internal/logging"
	"github.com/i474232898/weather-motion-relay/internal/scheduler"
)

func main() {
	cfg, err := config.LoadDisplay()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	client := display.NewClient(&http.Client{Timeout: cfg.HTTPTimeout}, cfg.RelayURL)

	renderers := []display.Renderer{display.NewTextRenderer(os.Stdout)}
	if cfg.ImagePath != "" {
		renderers = append(renderers, display.NewImageRenderer(cfg.ImagePath, cfg.FontPath))
	}
	poller := display.NewPoller(client, display.NewBoard(), logger.Named("display"), renderers...)

	sched := scheduler.New(cfg.PollInterval, cfg.HTTPTimeout, poller.Poll, logger.Named("scheduler"))
	if err := sched.Start(); err != nil {
		logger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	logger.Info("weather display polling",
		zap.String("relay", cfg.RelayURL),
		zap.Duration("interval", cfg.PollInterval),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
}
