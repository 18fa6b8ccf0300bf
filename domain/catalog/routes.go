package catalog

import (
	"github.com/labstack/echo/v4"

	"github.com/NeilHuang625/zcmetal/internal/server"
)

// RegisterRoutes registers the catalog API, throttled per client IP
func RegisterRoutes(e *echo.Echo, h *Handler, limiter *server.RateLimiter) {
	g := e.Group("/api/catalog")
	g.Use(limiter.Middleware())

	g.GET("/:kind", h.Get)
}
