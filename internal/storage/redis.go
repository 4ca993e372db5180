package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache holds the short-lived auth state (verification codes,
// session tokens) and the per-hotel revenue aggregates fed by the order
// event consumer.
type RedisCache struct {
	Client  *redis.Client
	CodeTTL time.Duration
}

func NewRedisCache(client *redis.Client, codeTTL time.Duration) *RedisCache {
	return &RedisCache{Client: client, CodeTTL: codeTTL}
}

func (c *RedisCache) codeKey(phone string) string {
	return "verify:" + phone
}

func (c *RedisCache) sessionKey(token string) string {
	return "session:" + token
}

func (c *RedisCache) revenueKey(hotel string) string {
	return "revenue:" + hotel
}

func (c *RedisCache) SetCode(ctx context.Context, phone, code string) error {
	return c.Client.Set(ctx, c.codeKey(phone), code, c.CodeTTL).Err()
}

func (c *RedisCache) GetCode(ctx context.Context, phone string) (string, error) {
	code, err := c.Client.Get(ctx, c.codeKey(phone)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return code, err
}

func (c *RedisCache) SetSession(ctx context.Context, token, phone string) error {
	return c.Client.Set(ctx, c.sessionKey(token), phone, 0).Err()
}

func (c *RedisCache) GetSession(ctx context.Context, token string) (string, error) {
	phone, err := c.Client.Get(ctx, c.sessionKey(token)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return phone, err
}

func (c *RedisCache) DeleteSession(ctx context.Context, token string) error {
	return c.Client.Del(ctx, c.sessionKey(token)).Err()
}

// AddRevenue folds one paid order into a hotel's running totals.
func (c *RedisCache) AddRevenue(ctx context.Context, hotel string, total float64) error {
	key := c.revenueKey(hotel)
	if err := c.Client.HIncrByFloat(ctx, key, "total", total).Err(); err != nil {
		return err
	}
	if err := c.Client.HIncrBy(ctx, key, "order_count", 1).Err(); err != nil {
		return err
	}
	return c.Client.HSet(ctx, key, "last_updated", time.Now().Unix()).Err()
}

// Revenue returns the accumulated revenue and order count for a hotel.
// A hotel with no paid orders reads as zero.
func (c *RedisCache) Revenue(ctx context.Context, hotel string) (float64, int, error) {
	fields, err := c.Client.HGetAll(ctx, c.revenueKey(hotel)).Result()
	if err != nil {
		return 0, 0, err
	}
	total, _ := strconv.ParseFloat(fields["total"], 64)
	count, _ := strconv.Atoi(fields["order_count"])
	return total, count, nil
}
