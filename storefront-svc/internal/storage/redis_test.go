package storage

import (
	"context"
	"testing"
	"time"

	"menulink/storefront-svc/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()}), mr
}

func TestRedisCache_Storefront(t *testing.T) {
	client, mr := setupTestRedis(t)
	cache := NewRedisCache(client, time.Minute)
	ctx := context.Background()

	miss, err := cache.GetStorefront(ctx, "kebab")
	require.NoError(t, err)
	assert.Nil(t, miss)

	storefront := &domain.Storefront{Restaurant: domain.Restaurant{ID: 1, Username: "kebab"}}
	require.NoError(t, cache.SetStorefront(ctx, "kebab", storefront))
	assert.Equal(t, time.Minute, mr.TTL("storefront:kebab"))

	hit, err := cache.GetStorefront(ctx, "kebab")
	require.NoError(t, err)
	assert.Equal(t, "kebab", hit.Restaurant.Username)

	require.NoError(t, cache.InvalidateStorefront(ctx, "kebab"))
	assert.False(t, mr.Exists("storefront:kebab"))
}

func TestPendingStore(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewPendingStore(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Stage(ctx, "u-1", domain.PendingRestaurant{Username: "kebab", RestaurantName: "Kebab House"}))
	assert.True(t, mr.Exists("pending_restaurant:u-1"))

	pending, err := store.Pending(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Kebab House", pending.RestaurantName)

	mr.FastForward(2 * time.Hour)
	expired, err := store.Pending(ctx, "u-1")
	require.NoError(t, err)
	assert.Nil(t, expired)

	require.NoError(t, store.Discard(ctx, "u-2"))
}
