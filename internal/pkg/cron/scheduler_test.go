package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunsJobImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start()
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	s.Stop()
	assert.Equal(t, int32(1), runs.Load())
}

func TestScheduler_RunOnceContinuesAfterFailure(t *testing.T) {
	s := NewScheduler()
	var second bool
	s.AddJob("fails", time.Hour, func(ctx context.Context) error { return errors.New("boom") })
	s.AddJob("ok", time.Hour, func(ctx context.Context) error {
		second = true
		return nil
	})

	s.RunOnce(context.Background())
	assert.True(t, second)
}

func TestScheduler_IgnoresJobsAddedAfterStart(t *testing.T) {
	s := NewScheduler()
	s.Start()
	defer s.Stop()

	s.AddJob("late", time.Hour, func(ctx context.Context) error { return nil })
	assert.Empty(t, s.jobs)
}

type fakePruner struct{ calls int }

func (f *fakePruner) PruneRevokedTokens() int {
	f.calls++
	return 2
}

func TestMaintenanceJobs_PruneRevokedTokens(t *testing.T) {
	pruner := &fakePruner{}
	s := NewScheduler()
	NewMaintenanceJobs(pruner, 0).RegisterJobs(s)

	s.RunOnce(context.Background())
	assert.Equal(t, 1, pruner.calls)
	assert.Equal(t, 15*time.Minute, s.jobs[0].Interval)
}
