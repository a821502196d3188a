package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSchedulerRunsImmediatelyAndRepeats(t *testing.T) {
	var runs atomic.Int32
	s := New(20*time.Millisecond, time.Second, func(ctx context.Context) {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		runs.Add(1)
	}, zap.NewNop())

	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, 2*time.Second, 10*time.Millisecond)
}

func TestSchedulerRejectsZeroInterval(t *testing.T) {
	s := New(0, time.Second, func(context.Context) {}, zap.NewNop())
	assert.Error(t, s.Start())
}

func TestSchedulerStopHaltsRuns(t *testing.T) {
	var runs atomic.Int32
	s := New(10*time.Millisecond, time.Second, func(context.Context) { runs.Add(1) }, zap.NewNop())

	require.NoError(t, s.Start())
	require.Eventually(t, func() bool { return runs.Load() >= 1 }, time.Second, 5*time.Millisecond)
	s.Stop()

	stopped := runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, runs.Load(), stopped+1)
}
