package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestRedisKVRoundTrip(t *testing.T) {
	kv := NewRedisKV(setupTestRedis(t))
	ctx := context.Background()

	assert.NoError(t, kv.Set(ctx, "cartItems:guest", `[{"id":"1","qty":2}]`))

	val, ok, err := kv.Get(ctx, "cartItems:guest")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1","qty":2}]`, val)
}

func TestRedisKVMissingKey(t *testing.T) {
	kv := NewRedisKV(setupTestRedis(t))

	val, ok, err := kv.Get(context.Background(), "cartItems:nobody")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", val)
}

func TestRedisKVDel(t *testing.T) {
	kv := NewRedisKV(setupTestRedis(t))
	ctx := context.Background()

	assert.NoError(t, kv.Set(ctx, "a", "1"))
	assert.NoError(t, kv.Set(ctx, "b", "2"))
	assert.NoError(t, kv.Del(ctx, "a", "b"))

	_, ok, err := kv.Get(ctx, "a")
	assert.NoError(t, err)
	assert.False(t, ok)
}
