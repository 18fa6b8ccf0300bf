package pages

import (
	"github.com/labstack/echo/v4"
)

// serviceAliases are the short paths each service is also reachable under.
var serviceAliases = map[string]string{
	"/gates":       "gates",
	"/fences":      "fences",
	"/balustrades": "balustrades",
	"/metal-works": "metal-works",
}

// RegisterRoutes registers the HTML pages
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/", h.Home)

	e.GET("/services", h.ServicesIndex)
	e.GET("/services/:id", h.Service)
	for path, id := range serviceAliases {
		e.GET(path, h.ServiceAlias(id))
	}

	e.GET("/solutions", h.Solutions)
	e.GET("/solutions/:id", h.Solution)

	e.RouteNotFound("/*", h.NotFoundPage)
}
