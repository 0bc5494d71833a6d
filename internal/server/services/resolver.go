package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophclip/internal/common"
	"github.com/dmitrijs2005/gophclip/internal/logging"
	"github.com/dmitrijs2005/gophclip/internal/server/cache"
	"github.com/dmitrijs2005/gophclip/internal/server/config"
	"github.com/dmitrijs2005/gophclip/internal/server/metrics"
	"github.com/dmitrijs2005/gophclip/internal/server/models"
	"github.com/dmitrijs2005/gophclip/internal/server/repositories/entries"
)

// Resolver looks up the content behind a code. It never writes to the
// store.
type Resolver struct {
	repo         entries.Repository
	logger       logging.Logger
	storeTimeout time.Duration
	cacheTTL     time.Duration
	opts         options
}

// NewResolver builds a Resolver using the store timeout and cache TTL in cfg.
func NewResolver(repo entries.Repository, cfg *config.Config, logger logging.Logger, opts ...Option) *Resolver {
	return &Resolver{
		repo:         repo,
		logger:       logger.With("module", "resolver"),
		storeTimeout: cfg.StoreTimeout,
		cacheTTL:     cfg.CacheTTL,
		opts:         buildOptions(opts),
	}
}

// Resolve returns the content of the newest live entry for code. Codes that
// were never issued and codes whose entry expired both yield
// common.ErrorNotFound.
func (r *Resolver) Resolve(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", fmt.Errorf("%w: code is required", common.ErrorValidation)
	}

	now := r.opts.now()

	cached, ok, err := r.opts.cache.Get(ctx, code)
	if err != nil {
		r.logger.Warn(ctx, "cache read failed", "code", code, "error", err)
	} else if ok && cached.IsLive(now) {
		r.opts.metrics.Resolves.WithLabelValues(metrics.ResultCacheHit).Inc()
		return cached.Content, nil
	}

	entry, err := r.findLive(ctx, code, now)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			r.opts.metrics.Resolves.WithLabelValues(metrics.ResultNotFound).Inc()
			return "", common.ErrorNotFound
		}
		r.opts.metrics.Resolves.WithLabelValues(metrics.ResultError).Inc()
		return "", fmt.Errorf("find entry: %w", err)
	}

	r.opts.metrics.Resolves.WithLabelValues(metrics.ResultHit).Inc()
	if err := r.opts.cache.Set(ctx, entry, cache.TTL(entry, r.cacheTTL, now)); err != nil {
		r.logger.Warn(ctx, "cache write failed", "code", code, "error", err)
	}
	return entry.Content, nil
}

func (r *Resolver) findLive(ctx context.Context, code string, now time.Time) (*models.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, r.storeTimeout)
	defer cancel()
	return r.repo.FindLive(ctx, code, now)
}
