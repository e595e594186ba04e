package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNonceStore(t *testing.T) (*NonceStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewNonceStore(goredis.NewClient(&goredis.Options{Addr: mr.Addr()})), mr
}

func TestNonceStore_RejectsReplay(t *testing.T) {
	store, mr := newNonceStore(t)
	ctx := context.Background()

	fresh, err := store.CheckAndSet(ctx, "ak_corner_shop", "n-1", 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, fresh)

	fresh, err = store.CheckAndSet(ctx, "ak_corner_shop", "n-1", 5*time.Minute)
	require.NoError(t, err)
	assert.False(t, fresh)

	assert.True(t, mr.Exists("dwallet:partner-nonce:ak_corner_shop:n-1"))
	assert.Equal(t, 5*time.Minute, mr.TTL("dwallet:partner-nonce:ak_corner_shop:n-1"))
}

func TestNonceStore_ScopedPerPartner(t *testing.T) {
	store, _ := newNonceStore(t)
	ctx := context.Background()

	for _, partner := range []string{"ak_corner_shop", "ak_kiosk_9"} {
		fresh, err := store.CheckAndSet(ctx, partner, "shared-nonce", time.Minute)
		require.NoError(t, err)
		assert.True(t, fresh, partner)
	}
}

func TestNonceStore_AcceptsAfterWindow(t *testing.T) {
	store, mr := newNonceStore(t)
	ctx := context.Background()

	_, err := store.CheckAndSet(ctx, "ak_corner_shop", "n-2", time.Second)
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	fresh, err := store.CheckAndSet(ctx, "ak_corner_shop", "n-2", time.Second)
	require.NoError(t, err)
	assert.True(t, fresh)
}

func TestNonceStore_StoreDown(t *testing.T) {
	store, mr := newNonceStore(t)
	mr.Close()

	_, err := store.CheckAndSet(context.Background(), "ak_corner_shop", "n-3", time.Minute)
	assert.Error(t, err)
}
