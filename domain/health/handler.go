package health

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/NeilHuang625/zcmetal/domain/catalog"
	"github.com/NeilHuang625/zcmetal/internal/config"
	"github.com/NeilHuang625/zcmetal/internal/version"
)

const checkTimeout = 5 * time.Second

// Handler handles health check requests
type Handler struct {
	media   catalog.Source
	cfg     *config.Config
	startAt time.Time
}

// NewHandler creates a new health handler
func NewHandler(media catalog.Source, cfg *config.Config) *Handler {
	return &Handler{
		media:   media,
		cfg:     cfg,
		startAt: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string              `json:"status"`
	Timestamp string              `json:"timestamp"`
	Uptime    string              `json:"uptime"`
	Version   version.VersionInfo `json:"version"`
	Checks    map[string]Check    `json:"checks"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health returns the overall service health
// GET /health
func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), checkTimeout)
	defer cancel()

	media := Check{Status: "healthy"}
	if err := h.media.Check(ctx); err != nil {
		media = Check{Status: "unhealthy", Message: err.Error()}
	}

	response := HealthResponse{
		Status:    media.Status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).String(),
		Version:   version.Info(),
		Checks: map[string]Check{
			"media": media,
		},
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, response)
}

// Healthz is the liveness probe
// GET /healthz
func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Ready reports whether the media source is reachable
// GET /ready
func (h *Handler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), checkTimeout)
	defer cancel()

	if err := h.media.Check(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":  "not_ready",
			"message": "Media source unavailable",
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status": "ready",
	})
}

// Debug returns runtime information outside production
// GET /debug
func (h *Handler) Debug(c echo.Context) error {
	if h.cfg.Environment == "production" {
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return c.JSON(http.StatusOK, map[string]any{
		"environment": h.cfg.Environment,
		"debug":       h.cfg.Debug,
		"go_version":  runtime.Version(),
		"goroutines":  runtime.NumGoroutine(),
		"memory": map[string]any{
			"alloc_mb":       mem.Alloc / 1024 / 1024,
			"total_alloc_mb": mem.TotalAlloc / 1024 / 1024,
			"sys_mb":         mem.Sys / 1024 / 1024,
			"num_gc":         mem.NumGC,
		},
		"media": map[string]any{
			"source":      h.media.Name(),
			"root":        h.cfg.Media.Root,
			"url_prefix":  h.cfg.Media.URLPrefix,
			"concurrency": h.cfg.Media.Concurrency,
			"video_keys":  h.cfg.Media.VideoKeys,
		},
	})
}
