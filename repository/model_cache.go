package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Ch4s3/langler/domain"
)

// modelCacheKeyPrefix namespaces model blobs in the shared Redis instance.
const modelCacheKeyPrefix = "langler:model:"

// ModelCache implementation backed by Redis.
type modelCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewModelCache creates a Redis-backed model cache.
func NewModelCache(client *redis.Client, logger *slog.Logger) ModelCache {
	return &modelCache{
		client: client,
		logger: logger,
	}
}

func modelCacheKey(name string) string {
	return modelCacheKeyPrefix + name
}

// Get returns the cached blob for a model name. A cache miss is reported as
// domain.ErrModelNotFound so callers fall through to the repository.
func (c *modelCache) Get(ctx context.Context, name string) ([]byte, error) {
	blob, err := c.client.Get(ctx, modelCacheKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", domain.ErrModelNotFound, name)
		}
		c.logger.ErrorContext(ctx, "model cache get failed", "error", err, "name", name)
		return nil, fmt.Errorf("cache get %s: %w", name, err)
	}
	return blob, nil
}

// Set stores a model blob with a TTL.
func (c *modelCache) Set(ctx context.Context, name string, blob []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, modelCacheKey(name), blob, ttl).Err(); err != nil {
		c.logger.ErrorContext(ctx, "model cache set failed", "error", err, "name", name)
		return fmt.Errorf("cache set %s: %w", name, err)
	}
	return nil
}

// Invalidate removes a cached model, typically after a retrain.
func (c *modelCache) Invalidate(ctx context.Context, name string) error {
	if err := c.client.Del(ctx, modelCacheKey(name)).Err(); err != nil {
		c.logger.ErrorContext(ctx, "model cache invalidate failed", "error", err, "name", name)
		return fmt.Errorf("cache invalidate %s: %w", name, err)
	}
	return nil
}
