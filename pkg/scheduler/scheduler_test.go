package scheduler

import (
	"context"
	"errors"
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storhub/bqsync/pkg/logger"
	"github.com/storhub/bqsync/pkg/metrics"
)

func TestAddRejectsInvalidSpec(t *testing.T) {
	s := New()
	err := s.Add(Job{
		Name:   "bad",
		Entity: "bad",
		Spec:   "not a cron spec",
		Run:    func(context.Context) (int, error) { return 0, nil },
	})
	require.Error(t, err)
	assert.Empty(t, s.Jobs())
}

func TestAddRegistersJob(t *testing.T) {
	s := New()
	err := s.Add(Job{
		Name:   "sync-test",
		Entity: "test",
		Spec:   "0 * * * *",
		Run:    func(context.Context) (int, error) { return 0, nil },
	})
	require.NoError(t, err)
	require.Len(t, s.Jobs(), 1)
	assert.Equal(t, "sync-test", s.Jobs()[0].Name)
}

func TestWrapSwallowsErrors(t *testing.T) {
	s := New()
	ran := false
	run := s.wrap(Job{
		Name:   "sync-failing",
		Entity: "wrap_failing",
		Run: func(context.Context) (int, error) {
			ran = true
			return 0, errors.New("warehouse unavailable")
		},
	})

	// Must not panic or propagate; the next tick gets a fresh attempt.
	run()
	assert.True(t, ran)

	failures := promtest.ToFloat64(metrics.SyncFailures.WithLabelValues("wrap_failing"))
	assert.Equal(t, 1.0, failures)
}

func TestWrapCountsSyncedRecords(t *testing.T) {
	s := New()
	run := s.wrap(Job{
		Name:   "sync-ok",
		Entity: "wrap_ok",
		Run: func(context.Context) (int, error) {
			return 42, nil
		},
	})

	run()
	run()

	synced := promtest.ToFloat64(metrics.RecordsSynced.WithLabelValues("wrap_ok"))
	assert.Equal(t, 84.0, synced)
	failures := promtest.ToFloat64(metrics.SyncFailures.WithLabelValues("wrap_ok"))
	assert.Equal(t, 0.0, failures)
}

func TestWrapProvidesJobContext(t *testing.T) {
	s := New()
	var gotJob, gotEntity any
	run := s.wrap(Job{
		Name:   "sync-ctx",
		Entity: "wrap_ctx",
		Run: func(ctx context.Context) (int, error) {
			gotJob = ctx.Value(logger.JobKey)
			gotEntity = ctx.Value(logger.EntityKey)
			return 0, nil
		},
	})

	run()
	assert.Equal(t, "sync-ctx", gotJob)
	assert.Equal(t, "wrap_ctx", gotEntity)
}
