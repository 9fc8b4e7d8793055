package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxCaptureHook struct {
	captured context.Context
}

func (h *ctxCaptureHook) BeforeProcess(ctx context.Context, cmd redis.Cmder) (context.Context, error) {
	h.captured = ctx
	return ctx, nil
}

func (h *ctxCaptureHook) AfterProcess(ctx context.Context, cmd redis.Cmder) error { return nil }

func (h *ctxCaptureHook) BeforeProcessPipeline(ctx context.Context, cmds []redis.Cmder) (context.Context, error) {
	return ctx, nil
}

func (h *ctxCaptureHook) AfterProcessPipeline(ctx context.Context, cmds []redis.Cmder) error {
	return nil
}

type limiterCtxKey struct{}

func TestRateLimiterUsesRequestContext(t *testing.T) {
	hook := &ctxCaptureHook{}
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
	})
	defer client.Close()
	client.AddHook(hook)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/routes", nil)
	req = req.WithContext(context.WithValue(req.Context(), limiterCtxKey{}, "plan"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: client,
		Key:         "test:limit",
		Limit:       1,
		Period:      time.Minute,
	})

	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	// Redis is unreachable here, so the limiter falls through to the
	// handler instead of failing the request
	assert.True(t, called)

	// The Redis command must carry the request's context, not a fresh one
	require.NotNil(t, hook.captured)
	assert.Equal(t, "plan", hook.captured.Value(limiterCtxKey{}))
}
