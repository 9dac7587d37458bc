package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"
	"wallet-settlement/internal/metrics"
	"wallet-settlement/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Limiter decides whether one more request fits the window for key.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter is a fixed-window counter kept in Redis so every instance
// shares the same budget. Keys expire with their window.
type RedisLimiter struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  int64(limit),
		window: window,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, time.Now().UnixNano()/int64(l.window))

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, fmt.Errorf("rate limit pipeline: %w", err)
	}

	return incr.Val() <= l.limit, nil
}

// KeyFunc derives the limiter key for a request, "" skips limiting.
type KeyFunc func(c *gin.Context) string

// ByUser keys on the authenticated user id, falling back to the client IP.
func ByUser(route string) KeyFunc {
	return func(c *gin.Context) string {
		if v, ok := c.Get("userID"); ok {
			if id, ok := v.(int64); ok {
				return route + ":user:" + strconv.FormatInt(id, 10)
			}
		}
		return route + ":ip:" + c.ClientIP()
	}
}

// Middleware rejects requests over budget with 429. A nil limiter or a
// failing store lets the request through.
func Middleware(l Limiter, route string, key KeyFunc, m *metrics.Metrics, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}
		k := key(c)
		if k == "" {
			c.Next()
			return
		}

		allowed, err := l.Allow(c.Request.Context(), k)
		if err != nil {
			logger.Warn().Err(err).Str("route", route).Msg("rate limit check failed, allowing request")
			c.Next()
			return
		}
		if !allowed {
			m.RateLimited(route)
			logger.Warn().Str("route", route).Str("key", k).Msg("rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, model.ErrorResponse{
				Error: "too many requests, retry later",
				Code:  "RATE_LIMITED",
			})
			return
		}
		c.Next()
	}
}
