package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/cache"
)

// Cache реализует cache.Cache поверх Redis
type Cache struct {
	client *redis.Client
}

// New создаёт новый Redis-backed кэш из существующего клиента
func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Get возвращает значение по ключу из Redis
// redis.Nil маппится в cache.ErrCacheMiss
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, cache.ErrCacheMiss
		}
		return nil, err
	}
	return val, nil
}

// Set сохраняет значение с TTL
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete удаляет ключ
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
