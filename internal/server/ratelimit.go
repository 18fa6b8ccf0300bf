package server

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/NeilHuang625/zcmetal/internal/config"
	"github.com/NeilHuang625/zcmetal/pkg/apperror"
)

// RateLimiter keeps a token bucket per client IP
type RateLimiter struct {
	cfg config.RateLimitConfig
	now func() time.Time

	mu        sync.Mutex
	clients   map[string]*client
	lastSweep time.Time
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a new per-IP rate limiter
func NewRateLimiter(cfg *config.Config) *RateLimiter {
	return newRateLimiter(cfg.RateLimit, time.Now)
}

func newRateLimiter(cfg config.RateLimitConfig, now func() time.Time) *RateLimiter {
	return &RateLimiter{
		cfg:       cfg,
		now:       now,
		clients:   make(map[string]*client),
		lastSweep: now(),
	}
}

// Allow reports whether a request from ip may proceed
func (r *RateLimiter) Allow(ip string) bool {
	if !r.cfg.Enabled {
		return true
	}
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cfg.IdleTTL > 0 && now.Sub(r.lastSweep) >= r.cfg.IdleTTL {
		r.sweep(now)
	}

	c, ok := r.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rate.Limit(r.cfg.Rate), r.cfg.Burst)}
		r.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// sweep drops limiters of clients idle for longer than IdleTTL. Caller
// holds mu.
func (r *RateLimiter) sweep(now time.Time) {
	for ip, c := range r.clients {
		if now.Sub(c.lastSeen) >= r.cfg.IdleTTL {
			delete(r.clients, ip)
		}
	}
	r.lastSweep = now
}

// Clients returns the number of tracked client IPs
func (r *RateLimiter) Clients() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Middleware rejects requests over the limit with 429
func (r *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if r.Allow(c.RealIP()) {
				return next(c)
			}
			retry := 1
			if r.cfg.Rate > 0 {
				retry = max(1, int(1/r.cfg.Rate))
			}
			c.Response().Header().Set("Retry-After", strconv.Itoa(retry))
			return apperror.ErrTooManyRequests.WithMessage(http.StatusText(http.StatusTooManyRequests))
		}
	}
}
