// Package entries stores clipboard entries. Every implementation evaluates
// liveness against the now passed in by the caller, never its own clock.
package entries

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophclip/internal/server/models"
)

type Repository interface {
	// Insert stores entry and sets entry.ID. It refuses to create a second
	// live entry for the same code and returns common.ErrCodeTaken instead.
	Insert(ctx context.Context, entry *models.Entry) error
	// ExistsLive reports whether a live entry holds code at now.
	ExistsLive(ctx context.Context, code string, now time.Time) (bool, error)
	// FindLive returns the newest live entry for code or common.ErrorNotFound.
	FindLive(ctx context.Context, code string, now time.Time) (*models.Entry, error)
	// DeleteExpired removes entries whose expiry is at or before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
