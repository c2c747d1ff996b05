package scheduler

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler() *Scheduler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(log)
}

func TestAddIntervalJobRejectsNonPositiveInterval(t *testing.T) {
	s := newTestScheduler()

	err := s.AddIntervalJob("bad", 0, func(ctx context.Context) error { return nil })
	assert.Error(t, err)

	err = s.AddIntervalJob("bad", -30, func(ctx context.Context) error { return nil })
	assert.Error(t, err)
}

func TestAddIntervalJobSchedules(t *testing.T) {
	s := newTestScheduler()

	err := s.AddIntervalJob("monitor", 300, func(ctx context.Context) error { return nil })
	require.NoError(t, err)

	s.Start()
	defer func() { <-s.Stop().Done() }()

	next, ok := s.NextRun("monitor")
	assert.True(t, ok)
	assert.False(t, next.IsZero())

	_, ok = s.NextRun("unknown")
	assert.False(t, ok)
}

func TestRunNowExecutesJob(t *testing.T) {
	s := newTestScheduler()

	ran := false
	err := s.RunNow("monitor", func(ctx context.Context) error {
		ran = true
		require.NotNil(t, ctx)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestRunNowPropagatesJobError(t *testing.T) {
	s := newTestScheduler()

	wantErr := errors.New("fetch failed")
	err := s.RunNow("monitor", func(ctx context.Context) error { return wantErr })
	assert.ErrorIs(t, err, wantErr)
}
