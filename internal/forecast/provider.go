package forecast

import (
	"context"
	"time"
)

// Provider abstracts the upstream forecast feed.
type Provider interface {
	Name() string
	FetchForecast(ctx context.Context) (Upstream, error)
}

// MotionTracker holds the timestamp of the last motion trigger.
type MotionTracker interface {
	Record() time.Time
	Last() (time.Time, bool)
}

// Observer receives service-level measurements.
type Observer interface {
	MotionDetected()
	UpstreamFetch(elapsed time.Duration, err error)
}
