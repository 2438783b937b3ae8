package driver

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Ch4s3/langler/config"
)

// InitRedis creates and pings a Redis client.
func InitRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}
