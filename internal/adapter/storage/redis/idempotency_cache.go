package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IdempotencyCache implements ports.IdempotencyCache. It is the fast path in
// front of the ledger's reference lookup for wallet recharges.
type IdempotencyCache struct {
	client goredis.Cmdable
}

// NewIdempotencyCache creates a new Redis-backed idempotency cache.
func NewIdempotencyCache(client goredis.Cmdable) *IdempotencyCache {
	return &IdempotencyCache{client: client}
}

// Get returns the cached result for k, or nil, nil when absent or expired.
func (c *IdempotencyCache) Get(ctx context.Context, k string) ([]byte, error) {
	val, err := c.client.Get(ctx, key("idem", k)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis idempotency get: %w", err)
	}
	return val, nil
}

// Set stores value for k. An existing entry is kept so the first result wins.
func (c *IdempotencyCache) Set(ctx context.Context, k string, value []byte, ttl time.Duration) error {
	if err := c.client.SetNX(ctx, key("idem", k), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis idempotency set: %w", err)
	}
	return nil
}
