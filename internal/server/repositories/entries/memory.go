package entries

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophclip/internal/common"
	"github.com/dmitrijs2005/gophclip/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps entries in process memory. It backs the "memory"
// storage mode and the service tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries []models.Entry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Insert(ctx context.Context, entry *models.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].Code == entry.Code && r.entries[i].IsLive(entry.CreatedAt) {
			return common.ErrCodeTaken
		}
	}

	entry.ID = uuid.NewString()
	r.entries = append(r.entries, copyEntry(entry))
	return nil
}

func (r *MemoryRepository) ExistsLive(ctx context.Context, code string, now time.Time) (bool, error) {
	_, err := r.FindLive(ctx, code, now)
	switch err {
	case nil:
		return true, nil
	case common.ErrorNotFound:
		return false, nil
	default:
		return false, err
	}
}

func (r *MemoryRepository) FindLive(ctx context.Context, code string, now time.Time) (*models.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	// newest first
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].Code == code && r.entries[i].IsLive(now) {
			e := copyEntry(&r.entries[i])
			return &e, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.entries[:0]
	var n int64
	for _, e := range r.entries {
		if e.IsLive(now) {
			kept = append(kept, e)
			continue
		}
		n++
	}
	clear(r.entries[len(kept):])
	r.entries = kept
	return n, nil
}

// Len returns the number of stored entries, live or not.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func copyEntry(e *models.Entry) models.Entry {
	c := *e
	if e.ExpiresAt != nil {
		t := *e.ExpiresAt
		c.ExpiresAt = &t
	}
	return c
}
