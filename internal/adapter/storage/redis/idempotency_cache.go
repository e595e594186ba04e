package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IdempotencyCache implements ports.IdempotencyCache using Redis.
// It holds settlement results keyed by payer and cart so a repeated payment
// request is answered without opening a unit of work.
type IdempotencyCache struct {
	client *goredis.Client
}

// NewIdempotencyCache creates a new Redis-backed idempotency cache.
func NewIdempotencyCache(client *goredis.Client) *IdempotencyCache {
	return &IdempotencyCache{client: client}
}

// Get returns the cached settlement, or nil when none is cached.
func (c *IdempotencyCache) Get(ctx context.Context, settlementKey string) ([]byte, error) {
	val, err := c.client.Get(ctx, key("settlement", settlementKey)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis settlement get: %w", err)
	}
	return val, nil
}

// Set caches a settlement. A zero ttl keeps it until evicted.
func (c *IdempotencyCache) Set(ctx context.Context, settlementKey string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key("settlement", settlementKey), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis settlement set: %w", err)
	}
	return nil
}
