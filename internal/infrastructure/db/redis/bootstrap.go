package redis

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redemptionKey = "bootstrap:elevation:redeemed"

// BootstrapTokenStore gates the out-of-band elevation path: the configured
// bootstrap token may be redeemed exactly once across all replicas. Redis
// holds the redemption marker so the once-only guarantee survives restarts
// and concurrent redemption attempts.
type BootstrapTokenStore struct {
	client *redis.Client
	token  string
}

// NewBootstrapTokenStore wraps the given Redis client. An empty token
// disables the bootstrap path entirely.
func NewBootstrapTokenStore(client *redis.Client, token string) *BootstrapTokenStore {
	return &BootstrapTokenStore{client: client, token: token}
}

// Redeem reports whether the presented token is the configured bootstrap
// token and, atomically, whether this is its first use. SetNX makes
// concurrent redemptions race safely: exactly one caller wins.
func (s *BootstrapTokenStore) Redeem(ctx context.Context, presented string) (bool, error) {
	if s.token == "" || presented == "" {
		return false, nil
	}
	if subtle.ConstantTimeCompare([]byte(presented), []byte(s.token)) != 1 {
		return false, nil
	}

	first, err := s.client.SetNX(ctx, redemptionKey, "1", 0).Result()
	if err != nil {
		return false, fmt.Errorf("redeem bootstrap token: %w", err)
	}
	return first, nil
}
