package shared

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyPrefix = "agrilog:idem:"

// IdempotencyStore remembers processed create requests for a retention window.
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore constructs the store. A nil client disables the guard.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

// ErrIdempotencyConflict indicates a duplicate key.
var ErrIdempotencyConflict = errors.New("idempotent request already processed")

// CheckAndInsert claims key within module, failing when it was already claimed.
func (s *IdempotencyStore) CheckAndInsert(ctx context.Context, key, module string) error {
	if s == nil || s.client == nil || key == "" {
		return nil
	}
	if module == "" {
		return errors.New("idempotency module required")
	}
	ok, err := s.client.SetNX(ctx, idempotencyPrefix+module+":"+key, time.Now().Unix(), s.ttl).Result()
	if err != nil {
		return Unavailable("idempotency", err)
	}
	if !ok {
		return errors.Join(ErrDuplicate, ErrIdempotencyConflict)
	}
	return nil
}

// Delete releases a key, typically after the guarded operation failed.
func (s *IdempotencyStore) Delete(ctx context.Context, key, module string) error {
	if s == nil || s.client == nil || key == "" {
		return nil
	}
	return s.client.Del(ctx, idempotencyPrefix+module+":"+key).Err()
}

// Ping reports whether Redis answers.
func (s *IdempotencyStore) Ping(ctx context.Context) error {
	if s == nil || s.client == nil {
		return errors.New("idempotency store not initialised")
	}
	return s.client.Ping(ctx).Err()
}
