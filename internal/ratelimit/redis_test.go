package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
	"wallet-settlement/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (f *fakeLimiter) Allow(ctx context.Context, key string) (bool, error) {
	f.keys = append(f.keys, key)
	return f.allowed, f.err
}

func limitedRouter(l Limiter, setUser bool) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if setUser {
			c.Set("userID", int64(9))
		}
		c.Next()
	})
	r.POST("/x", Middleware(l, "deposit_verify", ByUser("deposit_verify"), nil, zerolog.Nop()), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func hit(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	r.ServeHTTP(w, req)
	return w.Code
}

func TestMiddleware_Allows(t *testing.T) {
	l := &fakeLimiter{allowed: true}

	assert.Equal(t, http.StatusNoContent, hit(limitedRouter(l, true)))
	assert.Equal(t, []string{"deposit_verify:user:9"}, l.keys)
}

func TestMiddleware_RejectsOverBudget(t *testing.T) {
	l := &fakeLimiter{allowed: false}

	assert.Equal(t, http.StatusTooManyRequests, hit(limitedRouter(l, true)))
}

func TestMiddleware_FailsOpen(t *testing.T) {
	l := &fakeLimiter{err: errors.New("redis down")}

	assert.Equal(t, http.StatusNoContent, hit(limitedRouter(l, true)))
}

func TestMiddleware_NilLimiter(t *testing.T) {
	assert.Equal(t, http.StatusNoContent, hit(limitedRouter(nil, true)))
}

func TestByUser_FallsBackToIP(t *testing.T) {
	l := &fakeLimiter{allowed: true}

	hit(limitedRouter(l, false))

	assert.Equal(t, []string{"deposit_verify:ip:10.0.0.1"}, l.keys)
}

func TestNewClient_NoAddress(t *testing.T) {
	client, err := NewClient(context.Background(), config.RedisConfig{})

	assert.NoError(t, err)
	assert.Nil(t, client)
}

func TestRedisLimiter(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	client, err := NewClient(ctx, config.RedisConfig{Addr: addr})
	require.NoError(t, err)
	defer client.Close()

	l := NewRedisLimiter(client, "test-"+uuid.NewString(), 2, time.Hour)

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "user:1")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := l.Allow(ctx, "user:1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Allow(ctx, "user:2")
	require.NoError(t, err)
	assert.True(t, ok)
}
