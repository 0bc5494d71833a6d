package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophclip/internal/server/models"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "clip:"

type cachedEntry struct {
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// RedisCache stores entries as JSON under clip:<code>.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Dial parses a redis:// URL, connects and pings the server.
func Dial(ctx context.Context, url string) (*RedisCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opt.MaxRetries = 2
	opt.DialTimeout = 2 * time.Second
	opt.ReadTimeout = time.Second
	opt.WriteTimeout = time.Second

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisCache(client), nil
}

func key(code string) string {
	return keyPrefix + code
}

func (c *RedisCache) Get(ctx context.Context, code string) (*models.Entry, bool, error) {
	raw, err := c.client.Get(ctx, key(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var ce cachedEntry
	if err := json.Unmarshal(raw, &ce); err != nil {
		return nil, false, fmt.Errorf("decode cached entry: %w", err)
	}
	return &models.Entry{
		Code:      code,
		Content:   ce.Content,
		CreatedAt: ce.CreatedAt,
		ExpiresAt: ce.ExpiresAt,
	}, true, nil
}

func (c *RedisCache) Set(ctx context.Context, entry *models.Entry, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	raw, err := json.Marshal(cachedEntry{
		Content:   entry.Content,
		CreatedAt: entry.CreatedAt,
		ExpiresAt: entry.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("encode cached entry: %w", err)
	}
	if err := c.client.Set(ctx, key(entry.Code), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
