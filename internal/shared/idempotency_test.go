package shared

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*IdempotencyStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewIdempotencyStore(client, time.Minute), mr
}

func TestCheckAndInsertRejectsRepeatedKey(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CheckAndInsert(ctx, "abc", "receipts"))
	err := store.CheckAndInsert(ctx, "abc", "receipts")
	require.ErrorIs(t, err, ErrDuplicate)
	require.ErrorIs(t, err, ErrIdempotencyConflict)

	require.NoError(t, store.CheckAndInsert(ctx, "abc", "suppliers"))
}

func TestIdempotencyKeyExpires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CheckAndInsert(ctx, "k1", "receipts"))
	mr.FastForward(2 * time.Minute)
	require.NoError(t, store.CheckAndInsert(ctx, "k1", "receipts"))
}

func TestDeleteReleasesKey(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CheckAndInsert(ctx, "k2", "products"))
	require.NoError(t, store.Delete(ctx, "k2", "products"))
	require.NoError(t, store.CheckAndInsert(ctx, "k2", "products"))
}

func TestEmptyKeyAndNilStoreAreNoops(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.CheckAndInsert(context.Background(), "", "receipts"))

	var nilStore *IdempotencyStore
	require.NoError(t, nilStore.CheckAndInsert(context.Background(), "x", "receipts"))
}

func TestUnreachableRedisIsUnavailable(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()
	err := store.CheckAndInsert(context.Background(), "k3", "receipts")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnavailable))
}
