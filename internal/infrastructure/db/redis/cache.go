package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campuskit/school-admin-api/internal/core/ports"
)

const (
	overviewKey = "dashboard:overview"
	overviewTTL = 30 * time.Second
)

// OverviewCache caches the dashboard aggregate (teachers, students,
// classrooms) in Redis under a single key. Mutating operations invalidate it;
// a short TTL bounds staleness across instances either way.
type OverviewCache struct {
	client *redis.Client
}

// NewOverviewCache creates an OverviewCache wrapping the given Redis client.
func NewOverviewCache(client *redis.Client) *OverviewCache {
	return &OverviewCache{client: client}
}

// Get returns the cached overview and whether it was present.
func (c *OverviewCache) Get(ctx context.Context) (*ports.Overview, bool, error) {
	raw, err := c.client.Get(ctx, overviewKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("overview cache get: %w", err)
	}

	var overview ports.Overview
	if err := json.Unmarshal(raw, &overview); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		return nil, false, fmt.Errorf("overview cache decode: %w", err)
	}
	return &overview, true, nil
}

// Set stores the overview with the cache TTL.
func (c *OverviewCache) Set(ctx context.Context, overview *ports.Overview) error {
	raw, err := json.Marshal(overview)
	if err != nil {
		return fmt.Errorf("overview cache encode: %w", err)
	}
	return c.client.Set(ctx, overviewKey, raw, overviewTTL).Err()
}

// Invalidate drops the cached overview.
func (c *OverviewCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, overviewKey).Err()
}
