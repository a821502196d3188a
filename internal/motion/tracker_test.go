package motion

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	times []time.Time
	i     int
}

func (c *fakeClock) Now() time.Time {
	t := c.times[c.i]
	if c.i < len(c.times)-1 {
		c.i++
	}
	return t
}

func TestTrackerEmptyUntilFirstRecord(t *testing.T) {
	tr := NewTracker(nil)

	_, ok := tr.Last()
	assert.False(t, ok)

	at := tr.Record()
	last, ok := tr.Last()
	assert.True(t, ok)
	assert.Equal(t, at, last)
}

func TestTrackerOverwritesOnEachRecord(t *testing.T) {
	base := time.Date(2024, 10, 19, 9, 0, 0, 0, time.UTC)
	clock := &fakeClock{times: []time.Time{base, base.Add(time.Minute)}}
	tr := NewTracker(clock.Now)

	tr.Record()
	tr.Record()

	last, _ := tr.Last()
	assert.Equal(t, base.Add(time.Minute), last)
}

func TestTrackerNeverMovesBackwards(t *testing.T) {
	base := time.Date(2024, 10, 19, 9, 0, 0, 0, time.UTC)
	clock := &fakeClock{times: []time.Time{base, base.Add(-time.Second)}}
	tr := NewTracker(clock.Now)

	tr.Record()
	got := tr.Record()

	assert.Equal(t, base, got)
	last, _ := tr.Last()
	assert.Equal(t, base, last)
}

func TestTrackerStoresUTC(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	at := time.Date(2024, 10, 19, 18, 0, 0, 0, tokyo)
	tr := NewTracker(func() time.Time { return at })

	got := tr.Record()
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(at))
}

func TestTrackerConcurrentRecord(t *testing.T) {
	tr := NewTracker(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Record()
			tr.Last()
		}()
	}
	wg.Wait()

	_, ok := tr.Last()
	assert.True(t, ok)
}
