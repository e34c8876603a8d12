package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_AddJobRejectsZeroInterval(t *testing.T) {
	s := NewScheduler()
	assert.Error(t, s.AddJob("broken", 0, func(context.Context) error { return nil }))
}

func TestScheduler_RunsJobsUntilStopped(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	require.NoError(t, s.AddJob("tick", 5*time.Millisecond, func(context.Context) error {
		runs.Add(1)
		return nil
	}))

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()

	after := runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	s := NewScheduler()
	assert.NotPanics(t, s.Stop)
}

func TestScheduler_RunOnceJoinsErrors(t *testing.T) {
	s := NewScheduler()
	boom := errors.New("boom")
	var ran []string

	require.NoError(t, s.AddJob("first", time.Hour, func(context.Context) error {
		ran = append(ran, "first")
		return boom
	}))
	require.NoError(t, s.AddJob("second", time.Hour, func(context.Context) error {
		ran = append(ran, "second")
		return nil
	}))

	err := s.RunOnce(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "first")
	assert.Equal(t, []string{"first", "second"}, ran)
}
