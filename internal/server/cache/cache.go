// Package cache keeps recently resolved entries close to the resolver. The
// store stays authoritative; a cache miss or failure always falls back to it.
package cache

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophclip/internal/server/models"
)

type Cache interface {
	// Get returns the cached entry for code. ok is false on a miss.
	Get(ctx context.Context, code string) (entry *models.Entry, ok bool, err error)
	// Set caches entry under its code for ttl. A non-positive ttl is a no-op.
	Set(ctx context.Context, entry *models.Entry, ttl time.Duration) error
	Close() error
}

// TTL bounds maxTTL by the time entry has left to live at now. It returns 0
// for entries that are already expired.
func TTL(entry *models.Entry, maxTTL time.Duration, now time.Time) time.Duration {
	if entry.ExpiresAt == nil {
		return maxTTL
	}
	left := entry.ExpiresAt.Sub(now)
	if left <= 0 {
		return 0
	}
	return min(left, maxTTL)
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) (*models.Entry, bool, error) { return nil, false, nil }
func (Nop) Set(context.Context, *models.Entry, time.Duration) error { return nil }
func (Nop) Close() error { return nil }
