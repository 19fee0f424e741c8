package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const counterPrefix = "ratelimit:"

// RedisCounter counts requests per key in fixed windows shared across
// server instances.
type RedisCounter struct {
	client *redis.Client
}

// NewRedisCounter creates a new redis counter.
func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

// Increment counts one hit for key and returns the hits in the current window.
// The window starts with the first hit.
func (c *RedisCounter) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	fullKey := counterPrefix + key

	count, err := c.client.Incr(ctx, fullKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}
	if count == 1 {
		if err := c.client.Expire(ctx, fullKey, window).Err(); err != nil {
			return 0, fmt.Errorf("failed to set counter window: %w", err)
		}
	}
	return count, nil
}

// NewClient parses a redis URL and applies the password and database overrides.
func NewClient(url, password string, db int) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	if db > 0 {
		opts.DB = db
	}
	return redis.NewClient(opts), nil
}

// Ping reports whether the redis server answers within two seconds.
func Ping(ctx context.Context, client *redis.Client) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}
