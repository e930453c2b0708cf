package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrCacheMiss means the key does not exist
var ErrCacheMiss = errors.New("cache miss")

// KVStore abstracts the key-value backend so tests can swap Redis out
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
}

// RedisKVStore is a KVStore backed by go-redis
type RedisKVStore struct {
	client *redis.Client
}

// NewRedisKVStore wraps a redis client
func NewRedisKVStore(client *redis.Client) *RedisKVStore {
	return &RedisKVStore{client: client}
}

func (r *RedisKVStore) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", err
	}
	return val, nil
}

func (r *RedisKVStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisKVStore) Incr(ctx context.Context, key string) (int64, error) {
	return r.client.Incr(ctx, key).Result()
}

// ResponseCache stores computed per-user responses for a short TTL.
// Keys embed a per-user generation number; bumping it on every write
// orphans all earlier entries at once. A nil *ResponseCache is valid and
// caches nothing.
type ResponseCache struct {
	kv     KVStore
	ttl    time.Duration
	logger *zap.Logger
}

// NewResponseCache creates a cache over kv
func NewResponseCache(kv KVStore, ttl time.Duration, logger *zap.Logger) *ResponseCache {
	return &ResponseCache{kv: kv, ttl: ttl, logger: logger}
}

func generationKey(userID string) string {
	return fmt.Sprintf("eldercare:health:%s:gen", userID)
}

func (c *ResponseCache) key(ctx context.Context, userID, name string) (string, error) {
	gen, err := c.kv.Get(ctx, generationKey(userID))
	if errors.Is(err, ErrCacheMiss) {
		gen = "0"
	} else if err != nil {
		return "", err
	}
	return fmt.Sprintf("eldercare:health:%s:%s:%s", userID, gen, name), nil
}

// Get decodes a cached value into dst and reports whether it was found.
// The returned key is bound to the generation read here; Set must store
// under it so that a write landing in between leaves the result orphaned.
// An empty key means the cache is unavailable.
func (c *ResponseCache) Get(ctx context.Context, userID, name string, dst any) (string, bool) {
	if c == nil {
		return "", false
	}

	key, err := c.key(ctx, userID, name)
	if err != nil {
		c.logger.Warn("Cache key lookup failed", zap.String("user_id", userID), zap.Error(err))
		return "", false
	}

	raw, err := c.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			c.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return key, false
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		c.logger.Warn("Cache entry is corrupt", zap.String("key", key), zap.Error(err))
		return key, false
	}
	return key, true
}

// Set stores value under a key returned by Get
func (c *ResponseCache) Set(ctx context.Context, key string, value any) {
	if c == nil || key == "" {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.kv.Set(ctx, key, string(raw), c.ttl); err != nil {
		c.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
		return
	}

	c.logger.Debug("Cached response", zap.String("key", key))
}

// Invalidate drops every cached response of the user
func (c *ResponseCache) Invalidate(ctx context.Context, userID string) {
	if c == nil {
		return
	}
	if _, err := c.kv.Incr(ctx, generationKey(userID)); err != nil {
		c.logger.Warn("Cache invalidation failed", zap.String("user_id", userID), zap.Error(err))
	}
}
