package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// NonceStore remembers the nonces of signed partner requests for as long as
// their timestamp could still be accepted.
type NonceStore struct {
	client *goredis.Client
}

// NewNonceStore creates a new Redis-backed nonce store.
func NewNonceStore(client *goredis.Client) *NonceStore {
	return &NonceStore{client: client}
}

// CheckAndSet records nonce for the partner with SET NX. It returns false
// when the partner already used the nonce inside ttl.
func (s *NonceStore) CheckAndSet(ctx context.Context, partnerID string, nonce string, ttl time.Duration) (bool, error) {
	result, err := s.client.SetArgs(ctx, key("partner-nonce", partnerID, nonce), 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis nonce check: %w", err)
	}
	return result == "OK", nil
}
