package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// NonceStore implements ports.NonceStore using SET NX.
type NonceStore struct {
	client goredis.Cmdable
}

// NewNonceStore creates a new Redis-backed nonce store.
func NewNonceStore(client goredis.Cmdable) *NonceStore {
	return &NonceStore{client: client}
}

// CheckAndSet records nonce within scope. It reports false when the nonce
// was already recorded and has not expired.
func (s *NonceStore) CheckAndSet(ctx context.Context, scope, nonce string, ttl time.Duration) (bool, error) {
	fresh, err := s.client.SetNX(ctx, key("nonce", scope, nonce), time.Now().Unix(), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis nonce check: %w", err)
	}
	return fresh, nil
}

// Release deletes nonce from scope.
func (s *NonceStore) Release(ctx context.Context, scope, nonce string) error {
	if err := s.client.Del(ctx, key("nonce", scope, nonce)).Err(); err != nil {
		return fmt.Errorf("redis nonce release: %w", err)
	}
	return nil
}
