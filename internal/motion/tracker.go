// Package motion keeps the timestamp of the last motion-sensor trigger.
package motion

import (
	"sync"
	"time"
)

// Tracker is a concurrency-safe holder for the last motion timestamp.
// The value lives for the process lifetime only.
type Tracker struct {
	mu   sync.RWMutex
	last time.Time
	set  bool
	now  func() time.Time
}

// NewTracker creates an empty Tracker. A nil clock defaults to time.Now.
func NewTracker(now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{now: now}
}

// Record overwrites the stored timestamp with the current time and returns it.
// A clock reading earlier than the stored value leaves it unchanged.
func (t *Tracker) Record() time.Time {
	at := t.now().UTC()

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.set && at.Before(t.last) {
		return t.last
	}
	t.last = at
	t.set = true
	return at
}

// Last returns the stored timestamp and whether any motion was recorded yet.
func (t *Tracker) Last() (time.Time, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.last, t.set
}
