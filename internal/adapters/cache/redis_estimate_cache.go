// Package cache provides a Redis-backed cache for priced estimates. The
// model is deterministic, so an identical request tuple always yields the
// same estimate and is safe to serve from cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"property-value-service/internal/domain"
	"property-value-service/internal/platform/obs"
)

type RedisEstimateCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisEstimateCache(client *redis.Client, ttl time.Duration) *RedisEstimateCache {
	return &RedisEstimateCache{Client: client, TTL: ttl}
}

// cacheKey builds a stable key from every field that feeds the model.
func cacheKey(req domain.EstimateRequest) string {
	return fmt.Sprintf(
		"estimate:%s|%s|%d|%s|%d|%d|%s|%.1f",
		req.Region, req.Locality, req.Year, req.PropertyType,
		req.SizeSqm, req.Bedrooms, req.Condition, req.DistanceKm,
	)
}

// Get returns the cached estimate for req, or (nil, nil) on a miss.
func (c *RedisEstimateCache) Get(ctx context.Context, req domain.EstimateRequest) (_ *domain.Estimate, err error) {
	defer obs.Time(ctx, "estimate.cache.Get")(&err)

	if c.Client == nil {
		return nil, errors.New("estimate cache: client is nil")
	}

	raw, err := c.Client.Get(ctx, cacheKey(req)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get estimate cache: %w", err)
	}

	var est domain.Estimate
	if err := json.Unmarshal(raw, &est); err != nil {
		return nil, fmt.Errorf("get estimate cache: decode cached value: %w", err)
	}

	return &est, nil
}

// Put stores the estimate for req with the configured TTL.
func (c *RedisEstimateCache) Put(ctx context.Context, req domain.EstimateRequest, est domain.Estimate) (err error) {
	defer obs.Time(ctx, "estimate.cache.Put")(&err)

	if c.Client == nil {
		return errors.New("estimate cache: client is nil")
	}

	raw, err := json.Marshal(est)
	if err != nil {
		return fmt.Errorf("put estimate cache: encode estimate: %w", err)
	}

	if err := c.Client.Set(ctx, cacheKey(req), raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("put estimate cache: %w", err)
	}

	return nil
}
