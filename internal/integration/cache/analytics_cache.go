// Package cache provides the redis-backed analytics snapshot cache and
// request counters.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/domain/entity"
	"github.com/kpi-dashboard/backend/internal/domain/progress"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

const (
	analyticsPrefix     = "analytics"
	analyticsVersionKey = "analytics:version"

	defaultAnalyticsTTL = 5 * time.Minute
)

// redisAnalyticsCache stores enrichment snapshots under keys that embed a
// data version. Invalidate bumps the version so older snapshots are never
// read again and expire through their TTL. Callers read the version once,
// before loading, and pass it to both Get and Set.
type redisAnalyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisAnalyticsCache creates a new redis analytics cache.
func NewRedisAnalyticsCache(client *redis.Client, ttl time.Duration) adapter.AnalyticsCache {
	if ttl <= 0 {
		ttl = defaultAnalyticsTTL
	}
	return &redisAnalyticsCache{
		client: client,
		ttl:    ttl,
	}
}

// Version returns the current data version. A missing key is version 0.
func (c *redisAnalyticsCache) Version(ctx context.Context) (int64, error) {
	version, err := c.client.Get(ctx, analyticsVersionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("failed to read analytics version: %w", err)
	}
	return version, nil
}

// Get returns the snapshot of the department for day at version, or nil on
// a miss.
func (c *redisAnalyticsCache) Get(ctx context.Context, department valueobject.Department, day time.Time, version int64) (*progress.DepartmentAnalytics, error) {
	data, err := c.client.Get(ctx, snapshotKey(department, day, version)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read analytics snapshot: %w", err)
	}

	var analytics progress.DepartmentAnalytics
	if err := json.Unmarshal(data, &analytics); err != nil {
		return nil, fmt.Errorf("failed to decode analytics snapshot: %w", err)
	}
	return &analytics, nil
}

// Set stores the snapshot of the department for day at version.
func (c *redisAnalyticsCache) Set(ctx context.Context, department valueobject.Department, day time.Time, version int64, analytics *progress.DepartmentAnalytics) error {
	data, err := json.Marshal(analytics)
	if err != nil {
		return fmt.Errorf("failed to encode analytics snapshot: %w", err)
	}
	if err := c.client.Set(ctx, snapshotKey(department, day, version), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write analytics snapshot: %w", err)
	}
	return nil
}

// Invalidate bumps the data version.
func (c *redisAnalyticsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, analyticsVersionKey).Err(); err != nil {
		return fmt.Errorf("failed to bump analytics version: %w", err)
	}
	return nil
}

func snapshotKey(department valueobject.Department, day time.Time, version int64) string {
	return fmt.Sprintf("%s:%s:%s:v%d", analyticsPrefix, department, day.Format(entity.DateLayout), version)
}

// noopAnalyticsCache is used when redis is disabled.
type noopAnalyticsCache struct{}

// NewNoopAnalyticsCache returns a cache that never stores anything.
func NewNoopAnalyticsCache() adapter.AnalyticsCache {
	return noopAnalyticsCache{}
}

func (noopAnalyticsCache) Version(context.Context) (int64, error) {
	return 0, nil
}

func (noopAnalyticsCache) Get(context.Context, valueobject.Department, time.Time, int64) (*progress.DepartmentAnalytics, error) {
	return nil, nil
}

func (noopAnalyticsCache) Set(context.Context, valueobject.Department, time.Time, int64, *progress.DepartmentAnalytics) error {
	return nil
}

func (noopAnalyticsCache) Invalidate(context.Context) error {
	return nil
}
