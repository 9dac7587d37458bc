package ratelimit

import (
	"context"
	"fmt"
	"time"
	"wallet-settlement/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewClient connects to Redis. It returns nil, nil when no address is
// configured so callers can run without a shared limiter.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}
