package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewStore(client, time.Hour), mr
}

func TestStoreCreateAndValidate(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	ok, err := store.Valid(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)

	t.Run("unknown token is invalid", func(t *testing.T) {
		ok, err := store.Valid(ctx, "deadbeef")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty token is invalid", func(t *testing.T) {
		ok, err := store.Valid(ctx, "")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestStoreTokensAreUnique(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	a, err := store.Create(ctx)
	require.NoError(t, err)
	b, err := store.Create(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestStoreDestroy(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, token))

	ok, err := store.Valid(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)

	t.Run("destroying an unknown token is fine", func(t *testing.T) {
		require.NoError(t, store.Destroy(ctx, "deadbeef"))
	})
}

func TestStoreExpiry(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx)
	require.NoError(t, err)

	// Expiry is passive: once the TTL runs out the token stops validating.
	mr.FastForward(2 * time.Hour)

	ok, err := store.Valid(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
}
