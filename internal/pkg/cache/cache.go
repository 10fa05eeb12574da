package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yigit/careerguide/internal/pkg/logger"
)

// Store is the byte-level cache used for catalog reads.
// Implementations fail safe: backend errors behave like cache misses.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Client wraps redis.Client. A nil *Client is a valid, always-missing cache.
type Client struct {
	client *redis.Client
}

// New creates a new Redis-backed cache client.
func New(opts *redis.Options) *Client {
	return &Client{client: redis.NewClient(opts)}
}

// Ping reports whether redis is reachable
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Get returns the cached value or nil on a miss or redis failure.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Cache read failed, treating as miss")
		return nil, nil
	}
	return res, nil
}

// Set stores value with TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
	return nil
}

// Delete removes keys, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	if c == nil || c.client == nil || len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Warn().Err(err).Strs("keys", keys).Msg("Cache invalidation failed")
	}
	return nil
}

// Close releases the redis connection pool
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// GetJSON decodes a cached JSON value into dst and reports a hit.
func GetJSON(ctx context.Context, store Store, key string, dst interface{}) bool {
	if store == nil {
		return false
	}
	raw, err := store.Get(ctx, key)
	if err != nil || raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Discarding undecodable cache entry")
		return false
	}
	return true
}

// SetJSON encodes value as JSON and stores it.
func SetJSON(ctx context.Context, store Store, key string, value interface{}, ttl time.Duration) {
	if store == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Skipping cache write for unencodable value")
		return
	}
	_ = store.Set(ctx, key, raw, ttl)
}
