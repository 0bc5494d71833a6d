package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophclip/internal/logging"
	"github.com/dmitrijs2005/gophclip/internal/server/metrics"
	"github.com/dmitrijs2005/gophclip/internal/server/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJanitor_Sweep(t *testing.T) {
	repo := newHookRepo()
	clock := newFakeClock()
	m := metrics.New()
	ctx := context.Background()

	past := clock.Now().Add(-time.Minute)
	require.NoError(t, repo.Insert(ctx, &models.Entry{Code: "1000", Content: "a", CreatedAt: past.Add(-time.Hour), ExpiresAt: &past}))
	require.NoError(t, repo.Insert(ctx, &models.Entry{Code: "1001", Content: "b", CreatedAt: past}))

	j := NewJanitor(repo, testConfig(), logging.Nop{}, WithClock(clock.Now), WithMetrics(m))

	assert.EqualValues(t, 1, j.Sweep(ctx))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExpiredDeleted))
	assert.EqualValues(t, 0, j.Sweep(ctx))
}

func TestJanitor_SweepFailure(t *testing.T) {
	repo := newHookRepo()
	repo.deleteFn = func(context.Context, time.Time) (int64, error) { return 0, errors.New("locked") }
	m := metrics.New()

	j := NewJanitor(repo, testConfig(), logging.Nop{}, WithMetrics(m))

	assert.EqualValues(t, 0, j.Sweep(context.Background()))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CleanupFailures))
}

func TestJanitor_RunDisabled(t *testing.T) {
	repo := newHookRepo()
	j := NewJanitor(repo, testConfig(), logging.Nop{})

	require.NoError(t, j.Run(context.Background()))
	assert.Zero(t, repo.deleteCalls)
}

func TestJanitor_RunSweepsUntilCanceled(t *testing.T) {
	repo := newHookRepo()
	swept := make(chan struct{}, 1)
	repo.deleteFn = func(context.Context, time.Time) (int64, error) {
		select {
		case swept <- struct{}{}:
		default:
		}
		return 0, nil
	}
	cfg := testConfig()
	cfg.CleanupInterval = 5 * time.Millisecond
	j := NewJanitor(repo, cfg, logging.Nop{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- j.Run(ctx) }()

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor never swept")
	}
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop")
	}
}
