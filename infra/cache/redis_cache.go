package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/fxconvert/pkg/cache"
	"github.com/redis/go-redis/v9"
)

// RedisCache implements RateTableCache over a single Redis key, for
// deployments running more than one replica behind the same cache.
// The stored value carries its own FetchedAt; the Redis expiry is only a
// safety bound, staleness is still decided by the conversion service.
type RedisCache struct {
	client *redis.Client
	key    string
	expiry time.Duration
	logger *slog.Logger
}

// NewRedisCache creates a RedisCache from redis.Options.
func NewRedisCache(
	opt *redis.Options,
	keyPrefix string,
	expiry time.Duration,
	logger *slog.Logger,
) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(opt),
		key:    keyPrefix + "rates:usd",
		expiry: expiry,
		logger: logger,
	}
}

// Get returns the current snapshot, or nil on a cache miss.
func (c *RedisCache) Get(ctx context.Context) (*cache.Snapshot, error) {
	val, err := c.client.Get(ctx, c.key).Result()
	if errors.Is(err, redis.Nil) {
		c.logger.Debug("redis cache miss", "key", c.key)
		return nil, nil
	}
	if err != nil {
		c.logger.Error("redis cache get error", "key", c.key, "error", err)
		return nil, err
	}
	var snap cache.Snapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		c.logger.Error("redis cache unmarshal error", "key", c.key, "error", err)
		return nil, err
	}
	c.logger.Debug("redis cache hit", "key", c.key, "fetched_at", snap.FetchedAt)
	return &snap, nil
}

// Set overwrites the slot.
func (c *RedisCache) Set(ctx context.Context, snap *cache.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		c.logger.Error("redis cache marshal error", "key", c.key, "error", err)
		return err
	}
	if err := c.client.Set(ctx, c.key, data, c.expiry).Err(); err != nil {
		c.logger.Error("redis cache set error", "key", c.key, "error", err)
		return err
	}
	return nil
}

var _ cache.RateTableCache = (*RedisCache)(nil)
