package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AbhishekM14/order-management-api/internal/domain/model"
)

const keyPrefix = "product:"

// Commands is the subset of the Redis API the cache needs.
type Commands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisCache keeps single-product reads in Redis with a TTL. Entries are
// JSON-encoded products keyed by ID.
type RedisCache struct {
	client Commands
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisCache builds the cache on top of an existing Redis client.
func NewRedisCache(client Commands, ttl time.Duration, logger *slog.Logger) *RedisCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisCache{client: client, ttl: ttl, logger: logger}
}

// Connect dials Redis and verifies connectivity.
func Connect(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return client, nil
}

func productKey(id int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, id)
}

// Get returns the cached product or (nil, nil) on a miss.
func (c *RedisCache) Get(ctx context.Context, id int64) (*model.Product, error) {
	data, err := c.client.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var product model.Product
	if err := json.Unmarshal(data, &product); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		c.logger.Warn("dropping undecodable cache entry", slog.Int64("product_id", id))
		return nil, nil
	}
	return &product, nil
}

// Set stores the product under its key with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, product *model.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, productKey(product.ID), data, c.ttl).Err()
}

// Invalidate removes the cached entry for the product.
func (c *RedisCache) Invalidate(ctx context.Context, id int64) error {
	return c.client.Del(ctx, productKey(id)).Err()
}

// NoopCache is used when no Redis address is configured: every read misses
// and writes are discarded.
type NoopCache struct{}

func (NoopCache) Get(context.Context, int64) (*model.Product, error) { return nil, nil }
func (NoopCache) Set(context.Context, *model.Product) error          { return nil }
func (NoopCache) Invalidate(context.Context, int64) error            { return nil }
