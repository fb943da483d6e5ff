package ratelimit

import (
	"context"
	"time"

	"gin-shareit/internal/pkg/config"
	"gin-shareit/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "shareit:rate_limit:"

// RedisLimiter is a fixed-window counter shared by every instance that
// talks to the same Redis.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.client == nil {
		return false, errs.New("redis client is nil")
	}
	k := keyPrefix + key
	count, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, errs.Wrap(err, "failed to increment rate limit")
	}

	if count == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, errs.Wrap(err, "failed to set rate limit window")
		}
	}

	return count <= int64(l.limit), nil
}

func Ping(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return errs.Wrap(err, "failed to ping Redis")
	}
	return nil
}
