package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "idem:payments:"
	pendingMarker = "pending"
)

// IdempotencyStore keeps responses of POST /payments keyed by the client
// supplied Idempotency-Key. A key first holds a pending marker and then the
// saved response; both expire after ttl.
type IdempotencyStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewIdempotencyStore(rdb *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{rdb: rdb, ttl: ttl}
}

// Reserve claims key. It reports false when another request already holds it.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, s.key(key), pendingMarker, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("reserve %s: %w", key, err)
	}
	return ok, nil
}

// Load returns the saved response. done is false while the key is pending or
// after it expired.
func (s *IdempotencyStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	if string(payload) == pendingMarker {
		return nil, false, nil
	}
	return payload, true, nil
}

func (s *IdempotencyStore) Save(ctx context.Context, key string, payload []byte) error {
	if err := s.rdb.Set(ctx, s.key(key), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("release %s: %w", key, err)
	}
	return nil
}

func (s *IdempotencyStore) key(key string) string {
	return keyPrefix + key
}
