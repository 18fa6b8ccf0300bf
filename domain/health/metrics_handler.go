package health

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler exposes the Prometheus registry
type MetricsHandler struct {
	handler http.Handler
}

// NewMetricsHandler creates a new metrics handler over the default registry
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{
		handler: promhttp.Handler(),
	}
}

// Metrics serves the text exposition format
// GET /metrics
func (h *MetricsHandler) Metrics(c echo.Context) error {
	h.handler.ServeHTTP(c.Response(), c.Request())
	return nil
}
