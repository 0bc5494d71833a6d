// Package services contains the clipboard business logic: issuing codes for
// new content and resolving codes back to content.
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

// Issuer stores content under a freshly allocated code.
type Issuer struct {
	repo           entries.Repository
	logger         logging.Logger
	attempts       int
	cleanupOnIssue bool
	storeTimeout   time.Duration
	cacheTTL       time.Duration
	opts           options
}

// NewIssuer builds an Issuer from the attempt bound, cleanup switch, store
// timeout and cache TTL in cfg.
func NewIssuer(repo entries.Repository, cfg *config.Config, logger logging.Logger, opts ...Option) *Issuer {
	return &Issuer{
		repo:           repo,
		logger:         logger.With("module", "issuer"),
		attempts:       cfg.CodeAttempts,
		cleanupOnIssue: cfg.CleanupOnIssue,
		storeTimeout:   cfg.StoreTimeout,
		cacheTTL:       cfg.CacheTTL,
		opts:           buildOptions(opts),
	}
}

// Issue validates content, optionally purges expired entries and then tries
// up to the configured number of random codes. A code is taken when a live
// entry holds it; expired holders do not block reuse.
//
// Errors: common.ErrorValidation for empty content,
// common.ErrorCapacityExhausted when every attempt collided, anything else
// is a store failure.
func (i *Issuer) Issue(ctx context.Context, content, expiry string) (string, error) {
	if content == "" {
		i.opts.metrics.IssueFailures.WithLabelValues(metrics.ReasonValidation).Inc()
		return "", fmt.Errorf("%w: content is required", common.ErrorValidation)
	}

	now := i.opts.now()
	class := ParseExpiryClass(expiry)

	if i.cleanupOnIssue {
		purgeExpired(ctx, i.repo, now, i.storeTimeout, i.logger, i.opts.metrics)
	}

	for attempt := 1; attempt <= i.attempts; attempt++ {
		code, err := i.opts.newCode()
		if err != nil {
			i.opts.metrics.IssueFailures.WithLabelValues(metrics.ReasonStore).Inc()
			return "", fmt.Errorf("generate code: %w", err)
		}

		taken, err := i.existsLive(ctx, code, now)
		if err != nil {
			i.opts.metrics.IssueFailures.WithLabelValues(metrics.ReasonStore).Inc()
			return "", fmt.Errorf("check code: %w", err)
		}
		if taken {
			i.collision(ctx, code, attempt)
			continue
		}

		entry := &models.Entry{
			Code:      code,
			Content:   content,
			CreatedAt: now,
			ExpiresAt: class.ExpiresAt(now),
		}
		if err := i.insert(ctx, entry); err != nil {
			if errors.Is(err, common.ErrCodeTaken) {
				i.collision(ctx, code, attempt)
				continue
			}
			i.opts.metrics.IssueFailures.WithLabelValues(metrics.ReasonStore).Inc()
			return "", fmt.Errorf("store entry: %w", err)
		}

		i.opts.metrics.Issued.Inc()
		i.logger.Info(ctx, "code issued", "code", code, "expiry", string(class), "attempt", attempt)

		if err := i.opts.cache.Set(ctx, entry, cache.TTL(entry, i.cacheTTL, now)); err != nil {
			i.logger.Warn(ctx, "cache write failed", "code", code, "error", err)
		}
		return code, nil
	}

	i.opts.metrics.IssueFailures.WithLabelValues(metrics.ReasonCapacity).Inc()
	i.logger.Warn(ctx, "no free code found", "attempts", i.attempts)
	return "", common.ErrorCapacityExhausted
}

func (i *Issuer) collision(ctx context.Context, code string, attempt int) {
	i.opts.metrics.CodeCollisions.Inc()
	i.logger.Debug(ctx, "code collision", "code", code, "attempt", attempt)
}

func (i *Issuer) existsLive(ctx context.Context, code string, now time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, i.storeTimeout)
	defer cancel()
	return i.repo.ExistsLive(ctx, code, now)
}

func (i *Issuer) insert(ctx context.Context, entry *models.Entry) error {
	ctx, cancel := context.WithTimeout(ctx, i.storeTimeout)
	defer cancel()
	return i.repo.Insert(ctx, entry)
}
