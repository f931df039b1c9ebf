package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ListCache caches whole "list all" results, one entry per region. A region
// is populated lazily on the first read after an eviction and lives until a
// write evicts it; there is no TTL and no per-entry invalidation.
//
// Cache backend failures on the read path degrade to computing the value;
// they never fail the request.
type ListCache struct {
	kv     KV
	logger *zap.Logger
}

func NewListCache(kv KV, logger *zap.Logger) *ListCache {
	return &ListCache{kv: kv, logger: logger}
}

// GetOrCompute returns the cached value for region, computing and storing
// it on a miss.
func (c *ListCache) GetOrCompute(ctx context.Context, region string, compute func(context.Context) (string, error)) (string, error) {
	val, err := c.kv.Get(ctx, region)
	if err == nil {
		return val, nil
	}
	if err != ErrMiss {
		c.logger.Warn("cache read failed, recomputing", zap.String("region", region), zap.Error(err))
	}

	val, err = compute(ctx)
	if err != nil {
		return "", err
	}
	if err := c.kv.Set(ctx, region, val, 0); err != nil {
		c.logger.Warn("cache write failed", zap.String("region", region), zap.Error(err))
	}
	return val, nil
}

// Evict drops the region's entry. Called by every write of the owning
// resource type so the next list recomputes from storage.
func (c *ListCache) Evict(ctx context.Context, region string) error {
	if err := c.kv.Del(ctx, region); err != nil {
		c.logger.Error("cache eviction failed", zap.String("region", region), zap.Error(err))
		return fmt.Errorf("failed to evict cache region %q: %w", region, err)
	}
	return nil
}
