package forecast

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Service relays the upstream forecast and owns the motion timestamp.
type Service struct {
	provider Provider
	motion   MotionTracker
	observer Observer
	logger   *zap.Logger
}

// NewService creates a new Service.
func NewService(provider Provider, motion MotionTracker, observer Observer, logger *zap.Logger) *Service {
	return &Service{
		provider: provider,
		motion:   motion,
		observer: observer,
		logger:   logger,
	}
}

// RecordMotion stamps the current time as the last motion trigger.
func (s *Service) RecordMotion() time.Time {
	at := s.motion.Record()
	s.observer.MotionDetected()
	s.logger.Debug("motion recorded", zap.Time("at", at))
	return at
}

// LastMotion returns the last motion timestamp, if any.
func (s *Service) LastMotion() (time.Time, bool) {
	return s.motion.Last()
}

// Report fetches the feed once and returns the reshaped two-day view.
// Failures are returned as-is; nothing is retried or cached.
func (s *Service) Report(ctx context.Context) (Report, error) {
	start := time.Now()
	upstream, err := s.provider.FetchForecast(ctx)
	s.observer.UpstreamFetch(time.Since(start), err)
	if err != nil {
		return Report{}, fmt.Errorf("fetch forecast from %s: %w", s.provider.Name(), err)
	}

	today, tomorrow, err := Reshape(upstream)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Weather:  today,
		Tomorrow: tomorrow,
	}
	if at, ok := s.motion.Last(); ok {
		report.LastMotionDetected = &at
	}

	s.logger.Debug("forecast relayed",
		zap.String("title", upstream.Title),
		zap.String("today", today.Date),
		zap.String("tomorrow", tomorrow.Date),
	)
	return report, nil
}
