package forecast

import (
	"errors"
	"fmt"
)

// ErrIncompleteForecast is returned when the feed has fewer than two forecast entries.
var ErrIncompleteForecast = errors.New("forecast feed has fewer than two entries")

// Reshape maps the feed's first two entries to today's and tomorrow's snapshots.
// Only today's snapshot carries the feed description.
func Reshape(u Upstream) (today, tomorrow Snapshot, err error) {
	if len(u.Forecasts) < 2 {
		return Snapshot{}, Snapshot{}, fmt.Errorf("%w: got %d", ErrIncompleteForecast, len(u.Forecasts))
	}

	today = toSnapshot(u.Forecasts[0])
	today.Description = u.Description.Text
	tomorrow = toSnapshot(u.Forecasts[1])

	return today, tomorrow, nil
}

func toSnapshot(f UpstreamForecast) Snapshot {
	s := Snapshot{
		Date:      f.Date,
		DateLabel: f.DateLabel,
		Telop:     f.Telop,
		Temperature: Temperature{
			Max: celsiusOrNA(f.Temperature.Max),
			Min: celsiusOrNA(f.Temperature.Min),
		},
		ChanceOfRain: f.ChanceOfRain,
	}
	if f.Image != nil && f.Image.URL != "" {
		img := *f.Image
		s.Image = &img
	}
	return s
}

func celsiusOrNA(r *UpstreamReading) string {
	if r == nil || r.Celsius == nil || *r.Celsius == "" {
		return NotAvailable
	}
	return *r.Celsius
}
