package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache interface defines caching operations
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// ErrCacheMiss is returned when a key is not present.
var ErrCacheMiss = fmt.Errorf("cache miss")

// RedisCache implements Cache using Redis
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache creates a new Redis cache instance
func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	return &RedisCache{
		client: client,
		prefix: prefix,
	}
}

// prefixKey adds the cache prefix to a key
func (c *RedisCache) prefixKey(key string) string {
	if c.prefix == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", c.prefix, key)
}

// Get retrieves a value from cache
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefixKey(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get error: %w", err)
	}
	return []byte(val), nil
}

// Set stores a value in cache with TTL. Entries are always written whole;
// nothing updates a value in place.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefixKey(key), value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis set error: %w", err)
	}
	return nil
}

// Delete removes a value from cache
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	err := c.client.Del(ctx, c.prefixKey(key)).Err()
	if err != nil {
		return fmt.Errorf("redis delete error: %w", err)
	}
	return nil
}

// Clear removes all keys with the cache prefix
func (c *RedisCache) Clear(ctx context.Context) error {
	pattern := c.prefixKey("*")
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis clear error: %w", err)
		}
	}
	return iter.Err()
}

// Manager provides high-level JSON caching on top of a Cache. A nil Manager
// is valid and behaves as an always-miss cache, so callers run uncached when
// Redis is not configured.
type Manager struct {
	cache Cache
}

// NewManager creates a new cache manager
func NewManager(cache Cache) *Manager {
	return &Manager{cache: cache}
}

// GetJSON retrieves and unmarshals JSON data from cache
func (m *Manager) GetJSON(ctx context.Context, key string, dest interface{}) error {
	if m == nil || m.cache == nil {
		return ErrCacheMiss
	}
	data, err := m.cache.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// SetJSON marshals and stores JSON data in cache
func (m *Manager) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m == nil || m.cache == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}
	return m.cache.Set(ctx, key, data, ttl)
}

// Delete removes a key from cache
func (m *Manager) Delete(ctx context.Context, key string) error {
	if m == nil || m.cache == nil {
		return nil
	}
	return m.cache.Delete(ctx, key)
}

// RecommendationKey builds the cache key for a ranked recommendation result.
func RecommendationKey(origin, destination, dateBucket, cabin string, radiusKm float64, maxPerSide int) string {
	return fmt.Sprintf("reco:%s:%s:%s:%s:%.0f:%d", origin, destination, dateBucket, cabin, radiusKm, maxPerSide)
}

// NearbyKey builds the cache key for a nearby-airports lookup.
func NearbyKey(code string, radiusKm float64, maxResults int) string {
	return fmt.Sprintf("nearby:%s:%.0f:%d", code, radiusKm, maxResults)
}
