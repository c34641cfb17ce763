package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oggyb/matchcore/internal/config"
)

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.Client.Get(ctx, key).Result()
}

func (c *RedisCache) Del(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

// incrWindowScript increments a fixed-window counter and starts its TTL on the
// first hit. A key that somehow lost its TTL gets one again, so a window can
// never live forever. Returns {count, ttl_ms}.
var incrWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return {count, ttl}
`)

// IncrWindow atomically counts one event in the window stored at key.
// The returned count is clamped at zero.
func (c *RedisCache) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	res, err := incrWindowScript.Run(ctx, c.Client, []string{key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, 0, err
	}
	if len(res) != 2 {
		return 0, 0, fmt.Errorf("unexpected window reply for %s: %v", key, res)
	}
	return clamp(res[0]), time.Duration(res[1]) * time.Millisecond, nil
}

// reserveWindowScript takes one slot in a capped window, or none when the
// window is already full. Returns {count, ttl_ms, admitted}.
var reserveWindowScript = redis.NewScript(`
local count = tonumber(redis.call("GET", KEYS[1]) or "0")
local ttl = redis.call("PTTL", KEYS[1])
if count >= tonumber(ARGV[2]) then
  return {count, ttl, 0}
end
if count < 0 then
  redis.call("SET", KEYS[1], 0)
end
count = redis.call("INCR", KEYS[1])
ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return {count, ttl, 1}
`)

// releaseWindowScript hands one slot back, never going below zero. The TTL is
// left as it is.
var releaseWindowScript = redis.NewScript(`
local count = tonumber(redis.call("GET", KEYS[1]) or "0")
if count <= 0 then
  return 0
end
return redis.call("DECR", KEYS[1])
`)

// ReserveWindow atomically takes a slot in the window at key when fewer than
// limit are taken. admitted is false, and nothing is counted, when it is full.
func (c *RedisCache) ReserveWindow(ctx context.Context, key string, window time.Duration, limit int64) (int64, time.Duration, bool, error) {
	res, err := reserveWindowScript.Run(ctx, c.Client, []string{key}, window.Milliseconds(), limit).Int64Slice()
	if err != nil {
		return 0, 0, false, err
	}
	if len(res) != 3 {
		return 0, 0, false, fmt.Errorf("unexpected reserve reply for %s: %v", key, res)
	}
	ttl := time.Duration(res[1]) * time.Millisecond
	if ttl < 0 {
		ttl = 0
	}
	return clamp(res[0]), ttl, res[2] == 1, nil
}

// ReleaseWindow returns a slot taken by ReserveWindow. The count is clamped at zero.
func (c *RedisCache) ReleaseWindow(ctx context.Context, key string) (int64, error) {
	n, err := releaseWindowScript.Run(ctx, c.Client, []string{key}).Int64()
	if err != nil {
		return 0, err
	}
	return clamp(n), nil
}

// KeyForLikeCount generates Redis key for a user's like count
func (c *RedisCache) KeyForLikeCount(userID uint64) string {
	return fmt.Sprintf("likes:count:%d", userID)
}

// GetLikeCount returns the cached like count; ok is false on a cache miss.
func (c *RedisCache) GetLikeCount(ctx context.Context, userID uint64) (int64, bool, error) {
	key := c.KeyForLikeCount(userID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil // cache miss
	} else if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	// refresh TTL on access
	_ = c.Client.Expire(ctx, key, time.Hour).Err()
	return n, true, nil
}

func (c *RedisCache) SetLikeCount(ctx context.Context, userID uint64, count int64) error {
	// Always refresh TTL when updating
	return c.Client.Set(ctx, c.KeyForLikeCount(userID), clamp(count), time.Hour).Err()
}

// InvalidateLikeCount drops the cached count so the next read recomputes it.
func (c *RedisCache) InvalidateLikeCount(ctx context.Context, userID uint64) error {
	return c.Client.Del(ctx, c.KeyForLikeCount(userID)).Err()
}

func clamp(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
