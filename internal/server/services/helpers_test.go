package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophclip/internal/server/config"
	"github.com/dmitrijs2005/gophclip/internal/server/models"
	"github.com/dmitrijs2005/gophclip/internal/server/repositories/entries"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return cfg
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// hookRepo wraps a repository and lets tests override or count calls.
type hookRepo struct {
	entries.Repository

	mu          sync.Mutex
	existsCalls int
	insertCalls int
	deleteCalls int

	existsFn func(ctx context.Context, code string, now time.Time) (bool, error)
	insertFn func(ctx context.Context, e *models.Entry) error
	findFn   func(ctx context.Context, code string, now time.Time) (*models.Entry, error)
	deleteFn func(ctx context.Context, now time.Time) (int64, error)
}

func newHookRepo() *hookRepo {
	return &hookRepo{Repository: entries.NewMemoryRepository()}
}

func (r *hookRepo) ExistsLive(ctx context.Context, code string, now time.Time) (bool, error) {
	r.mu.Lock()
	r.existsCalls++
	fn := r.existsFn
	r.mu.Unlock()
	if fn != nil {
		return fn(ctx, code, now)
	}
	return r.Repository.ExistsLive(ctx, code, now)
}

func (r *hookRepo) Insert(ctx context.Context, e *models.Entry) error {
	r.mu.Lock()
	r.insertCalls++
	fn := r.insertFn
	r.mu.Unlock()
	if fn != nil {
		return fn(ctx, e)
	}
	return r.Repository.Insert(ctx, e)
}

func (r *hookRepo) FindLive(ctx context.Context, code string, now time.Time) (*models.Entry, error) {
	if r.findFn != nil {
		return r.findFn(ctx, code, now)
	}
	return r.Repository.FindLive(ctx, code, now)
}

func (r *hookRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	r.deleteCalls++
	fn := r.deleteFn
	r.mu.Unlock()
	if fn != nil {
		return fn(ctx, now)
	}
	return r.Repository.DeleteExpired(ctx, now)
}

// mapCache is an in-process cache.Cache.
type mapCache struct {
	mu     sync.Mutex
	items  map[string]models.Entry
	getErr error
	sets   int
}

func newMapCache() *mapCache {
	return &mapCache{items: map[string]models.Entry{}}
}

func (c *mapCache) Get(_ context.Context, code string) (*models.Entry, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	e, ok := c.items[code]
	if !ok {
		return nil, false, nil
	}
	return &e, true, nil
}

func (c *mapCache) Set(_ context.Context, e *models.Entry, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if ttl <= 0 {
		return nil
	}
	c.items[e.Code] = *e
	return nil
}

func (c *mapCache) Close() error { return nil }

// fixedCodes returns a generator cycling through codes and counting calls.
func fixedCodes(calls *int, codes ...string) CodeGenerator {
	var mu sync.Mutex
	return func() (string, error) {
		mu.Lock()
		defer mu.Unlock()
		c := codes[*calls%len(codes)]
		*calls++
		return c, nil
	}
}
