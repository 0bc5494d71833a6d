package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophclip/internal/logging"
	"github.com/dmitrijs2005/gophclip/internal/server/config"
	"github.com/dmitrijs2005/gophclip/internal/server/metrics"
	"github.com/dmitrijs2005/gophclip/internal/server/repositories/entries"
)

// purgeExpired deletes expired entries. Failures are logged and counted but
// never returned: cleanup must not fail the caller.
func purgeExpired(ctx context.Context, repo entries.Repository, now time.Time, timeout time.Duration, logger logging.Logger, m *metrics.Metrics) int64 {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	n, err := repo.DeleteExpired(ctx, now)
	if err != nil {
		m.CleanupFailures.Inc()
		logger.Warn(ctx, "expired entry cleanup failed", "error", err)
		return 0
	}
	if n > 0 {
		m.ExpiredDeleted.Add(float64(n))
		logger.Debug(ctx, "expired entries removed", "count", n)
	}
	return n
}

// Janitor periodically removes expired entries in the background.
type Janitor struct {
	repo         entries.Repository
	logger       logging.Logger
	interval     time.Duration
	storeTimeout time.Duration
	opts         options
}

// NewJanitor builds a Janitor that sweeps every cfg.CleanupInterval.
func NewJanitor(repo entries.Repository, cfg *config.Config, logger logging.Logger, opts ...Option) *Janitor {
	return &Janitor{
		repo:         repo,
		logger:       logger.With("module", "janitor"),
		interval:     cfg.CleanupInterval,
		storeTimeout: cfg.StoreTimeout,
		opts:         buildOptions(opts),
	}
}

// Sweep runs one cleanup pass and returns the number of removed entries.
func (j *Janitor) Sweep(ctx context.Context) int64 {
	return purgeExpired(ctx, j.repo, j.opts.now(), j.storeTimeout, j.logger, j.opts.metrics)
}

// Run sweeps every interval until ctx is done. A zero interval disables the
// janitor and Run returns immediately.
func (j *Janitor) Run(ctx context.Context) error {
	if j.interval <= 0 {
		return nil
	}

	j.logger.Info(ctx, "janitor started", "interval", j.interval.String())
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info(ctx, "janitor stopped")
			return nil
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}
