package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteQueueFlushesOnClose(t *testing.T) {
	kv := NewRedisKV(setupTestRedis(t))
	q := NewWriteQueue(kv)

	q.Enqueue("cartItems:guest", `[{"id":"1","qty":1}]`)
	q.Close()

	val, ok, err := kv.Get(context.Background(), "cartItems:guest")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1","qty":1}]`, val)
}

func TestWriteQueueNewestWriteWins(t *testing.T) {
	kv := NewRedisKV(setupTestRedis(t))
	q := NewWriteQueue(kv)

	for i := 0; i < 200; i++ {
		q.Enqueue("cartItems:guest", fmt.Sprintf("v%d", i))
	}
	q.Close()

	val, ok, err := kv.Get(context.Background(), "cartItems:guest")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v199", val)
}

func TestWriteQueueIndependentKeys(t *testing.T) {
	kv := NewRedisKV(setupTestRedis(t))
	q := NewWriteQueue(kv)

	q.Enqueue("cartItems:a", "selection-a")
	q.Enqueue("cartItemsArray:a", "cart-a")
	q.Enqueue("cartItems:b", "selection-b")
	q.Close()

	ctx := context.Background()
	for key, want := range map[string]string{
		"cartItems:a":      "selection-a",
		"cartItemsArray:a": "cart-a",
		"cartItems:b":      "selection-b",
	} {
		val, ok, err := kv.Get(ctx, key)
		assert.NoError(t, err)
		assert.True(t, ok, key)
		assert.Equal(t, want, val)
	}
}

func TestWriteQueueDelete(t *testing.T) {
	kv := NewRedisKV(setupTestRedis(t))
	ctx := context.Background()
	assert.NoError(t, kv.Set(ctx, "cartItems:guest", "stale"))
	assert.NoError(t, kv.Set(ctx, "cartItemsArray:guest", "stale"))

	q := NewWriteQueue(kv)
	q.EnqueueDelete("cartItems:guest", "cartItemsArray:guest")
	q.Close()

	_, ok, err := kv.Get(ctx, "cartItems:guest")
	assert.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = kv.Get(ctx, "cartItemsArray:guest")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestWriteQueueLatestReflectsQueuedWrites(t *testing.T) {
	kv := NewRedisKV(setupTestRedis(t))
	q := NewWriteQueue(kv)
	defer q.Close()

	_, _, ok := q.Latest("cartItems:guest")
	assert.False(t, ok)

	q.Enqueue("cartItems:guest", "v1")
	val, deleted, ok := q.Latest("cartItems:guest")
	assert.True(t, ok)
	assert.False(t, deleted)
	assert.Equal(t, "v1", val)

	q.Enqueue("cartItems:guest", "v2")
	val, _, _ = q.Latest("cartItems:guest")
	assert.Equal(t, "v2", val)

	q.EnqueueDelete("cartItems:guest")
	_, deleted, ok = q.Latest("cartItems:guest")
	assert.True(t, ok)
	assert.True(t, deleted)
}

func TestWriteQueueEnqueueAfterCloseIsNoop(t *testing.T) {
	kv := NewRedisKV(setupTestRedis(t))
	q := NewWriteQueue(kv)
	q.Close()

	q.Enqueue("cartItems:guest", "late")

	_, ok, err := kv.Get(context.Background(), "cartItems:guest")
	assert.NoError(t, err)
	assert.False(t, ok)
}
