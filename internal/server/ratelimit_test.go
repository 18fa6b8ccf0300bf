package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/NeilHuang625/zcmetal/internal/config"
	"github.com/NeilHuang625/zcmetal/pkg/apperror"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestRateLimiter_Allow(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := newRateLimiter(config.RateLimitConfig{Enabled: true, Rate: 1, Burst: 2, IdleTTL: time.Minute}, clock.now)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"), "burst exhausted")
	assert.True(t, rl.Allow("10.0.0.2"), "clients are independent")

	clock.t = clock.t.Add(time.Second)
	assert.True(t, rl.Allow("10.0.0.1"), "one token refilled")
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_EvictsIdle(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := newRateLimiter(config.RateLimitConfig{Enabled: true, Rate: 1, Burst: 1, IdleTTL: time.Minute}, clock.now)

	rl.Allow("10.0.0.1")
	rl.Allow("10.0.0.2")
	assert.Equal(t, 2, rl.Clients())

	clock.t = clock.t.Add(30 * time.Second)
	rl.Allow("10.0.0.2")

	clock.t = clock.t.Add(40 * time.Second)
	rl.Allow("10.0.0.3")
	assert.Equal(t, 2, rl.Clients(), "10.0.0.1 idle past the ttl")
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := newRateLimiter(config.RateLimitConfig{Enabled: false, Rate: 1, Burst: 1}, time.Now)
	for range 10 {
		assert.True(t, rl.Allow("10.0.0.1"))
	}
	assert.Zero(t, rl.Clients())
}

func TestRateLimiter_Middleware(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = apperror.HTTPErrorHandler(testLogger())
	rl := newRateLimiter(config.RateLimitConfig{Enabled: true, Rate: 0.5, Burst: 1, IdleTTL: time.Minute}, time.Now)
	e.GET("/api/catalog/:kind", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, rl.Middleware())

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/catalog/gallery-all", nil)
		req.Header.Set(echo.HeaderXForwardedFor, "203.0.113.9")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do().Code)
	rec := do()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), `"rate_limited"`)
}
