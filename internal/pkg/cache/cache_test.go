package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyNamespace(t *testing.T) {
	assert.Equal(t, "gym:staff:list", NewRedisCache(Options{Namespace: "gym"}).key("staff:list"))
	assert.Equal(t, "staff:list", NewRedisCache(Options{}).key("staff:list"))
}

func setupRedis(t *testing.T) *RedisCache {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	c := NewRedisCache(Options{Addr: addr, Namespace: "test-" + uuid.NewString()})
	require.NoError(t, c.Ping(context.Background()))
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRedisCache_RoundTrip(t *testing.T) {
	c := setupRedis(t)
	ctx := context.Background()

	type item struct {
		Name string `json:"name"`
	}

	var got item
	assert.ErrorIs(t, c.Get(ctx, "staff:list", &got), ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "staff:list", item{Name: "Juan"}, time.Minute))
	require.NoError(t, c.Get(ctx, "staff:list", &got))
	assert.Equal(t, "Juan", got.Name)
}

func TestRedisCache_DeletePrefix(t *testing.T) {
	c := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "staff:list:", []int{1}, time.Minute))
	require.NoError(t, c.Set(ctx, "staff:list:juan", []int{2}, time.Minute))
	require.NoError(t, c.Set(ctx, "inventory:list:", []int{3}, time.Minute))

	require.NoError(t, c.DeletePrefix(ctx, "staff:"))

	var v []int
	assert.ErrorIs(t, c.Get(ctx, "staff:list:", &v), ErrCacheMiss)
	assert.ErrorIs(t, c.Get(ctx, "staff:list:juan", &v), ErrCacheMiss)
	require.NoError(t, c.Get(ctx, "inventory:list:", &v))
	assert.Equal(t, []int{3}, v)
}
