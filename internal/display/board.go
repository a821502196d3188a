package display

import (
	"sync"
	"time"

	"github.com/i474232898/weather-motion-relay/internal/forecast"
)

// Static texts shown on the board.
const (
	MessageFetchFailed = "failed to fetch weather data."
	MessageLoading     = "loading weather data..."
	MessageNoInfo      = "no information"
	MessageNoDetails   = "no details available."
)

// View is an immutable copy of what the board currently shows.
type View struct {
	Today      *forecast.Snapshot
	Tomorrow   *forecast.Snapshot
	LastMotion *time.Time

	// Err is set after a failed poll and cleared by the next successful one.
	Err string
}

// Ready reports whether both cards can be drawn.
func (v View) Ready() bool {
	return v.Err == "" && v.Today != nil && v.Tomorrow != nil
}

// Board holds the displayed state between polls.
type Board struct {
	mu   sync.RWMutex
	view View
}

func NewBoard() *Board {
	return &Board{}
}

// Apply replaces the displayed state wholesale with a fresh report.
func (b *Board) Apply(r forecast.Report) {
	today, tomorrow := r.Weather, r.Tomorrow

	b.mu.Lock()
	defer b.mu.Unlock()
	b.view = View{
		Today:      &today,
		Tomorrow:   &tomorrow,
		LastMotion: r.LastMotionDetected,
	}
}

// Fail switches the board to the static error message.
func (b *Board) Fail() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.view.Err = MessageFetchFailed
}

func (b *Board) View() View {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.view
}
