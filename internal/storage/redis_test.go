package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCodeRoundTrip(t *testing.T) {
	cache := NewRedisCache(setupTestRedis(t), 5*time.Minute)
	ctx := context.Background()

	assert.NoError(t, cache.SetCode(ctx, "(123) 456-7890", "123456"))

	code, err := cache.GetCode(ctx, "(123) 456-7890")
	assert.NoError(t, err)
	assert.Equal(t, "123456", code)
}

func TestGetCodeMissingIsEmpty(t *testing.T) {
	cache := NewRedisCache(setupTestRedis(t), 5*time.Minute)

	code, err := cache.GetCode(context.Background(), "(999) 999-9999")
	assert.NoError(t, err)
	assert.Equal(t, "", code)
}

func TestSessionLifecycle(t *testing.T) {
	cache := NewRedisCache(setupTestRedis(t), 5*time.Minute)
	ctx := context.Background()

	assert.NoError(t, cache.SetSession(ctx, "token-1", "(123) 456-7890"))

	phone, err := cache.GetSession(ctx, "token-1")
	assert.NoError(t, err)
	assert.Equal(t, "(123) 456-7890", phone)

	assert.NoError(t, cache.DeleteSession(ctx, "token-1"))

	phone, err = cache.GetSession(ctx, "token-1")
	assert.NoError(t, err)
	assert.Equal(t, "", phone)
}

func TestRevenueAccumulates(t *testing.T) {
	cache := NewRedisCache(setupTestRedis(t), 5*time.Minute)
	ctx := context.Background()

	total, count, err := cache.Revenue(ctx, "Desi Tadka")
	assert.NoError(t, err)
	assert.Zero(t, total)
	assert.Zero(t, count)

	assert.NoError(t, cache.AddRevenue(ctx, "Desi Tadka", 25.98))
	assert.NoError(t, cache.AddRevenue(ctx, "Desi Tadka", 14.99))
	assert.NoError(t, cache.AddRevenue(ctx, "Brothers Cafe", 4.99))

	total, count, err = cache.Revenue(ctx, "Desi Tadka")
	assert.NoError(t, err)
	assert.InDelta(t, 40.97, total, 0.0001)
	assert.Equal(t, 2, count)

	total, count, err = cache.Revenue(ctx, "Brothers Cafe")
	assert.NoError(t, err)
	assert.InDelta(t, 4.99, total, 0.0001)
	assert.Equal(t, 1, count)
}
