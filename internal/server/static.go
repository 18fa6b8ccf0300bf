package server

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/NeilHuang625/zcmetal/internal/config"
	"github.com/NeilHuang625/zcmetal/pkg/logger"
	"github.com/NeilHuang625/zcmetal/web"
)

const (
	// Media URLs with ?v= carry a content fingerprint, so they never change.
	mediaCacheControl  = "public, max-age=31536000, immutable"
	staticCacheControl = "public, max-age=3600"
)

// RegisterStatic serves the embedded site assets and, for the fs media
// source, the media directory.
func RegisterStatic(e *echo.Echo, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	s := e.Group("/static", cacheControl(staticCacheControl, ""))
	s.StaticFS("/", web.Static())

	if cfg.Media.UseS3() {
		return
	}
	m := e.Group(cfg.Media.URLPrefix, cacheControl(staticCacheControl, mediaCacheControl))
	m.StaticFS("/", os.DirFS(cfg.Media.Root))
	log.Debug("serving media directory",
		slog.String("root", cfg.Media.Root),
		slog.String("prefix", cfg.Media.URLPrefix),
	)
}

// cacheControl sets value on successful responses, or versioned when it is
// non-empty and the request carries a ?v= fingerprint. Errors get no header.
func cacheControl(value, versioned string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v := value
			if versioned != "" && c.QueryParam("v") != "" {
				v = versioned
			}
			res := c.Response()
			res.Before(func() {
				if res.Status < http.StatusBadRequest {
					res.Header().Set(echo.HeaderCacheControl, v)
				}
			})
			return next(c)
		}
	}
}
