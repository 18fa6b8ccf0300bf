package tracing

import (
	"context"
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"

	"github.com/NeilHuang625/zcmetal/internal/config"
	"github.com/NeilHuang625/zcmetal/pkg/logger"
)

// Module exports catalog and page spans over OTLP/HTTP when
// OTEL_EXPORTER_OTLP_ENDPOINT is set, and installs a no-op provider otherwise.
var Module = fx.Module("tracing",
	fx.Provide(NewProvider),
	fx.Invoke(registerShutdown, registerMiddleware),
)

// Provider carries the SDK provider out of fx. It is nil while tracing is off.
type Provider struct {
	fx.Out

	SDK *sdktrace.TracerProvider `name:"tracing.sdk" optional:"true"`
}

type providerIn struct {
	fx.In

	SDK *sdktrace.TracerProvider `name:"tracing.sdk" optional:"true"`
}

// NewProvider installs the global tracer provider for cfg.
func NewProvider(cfg *config.Config, log *slog.Logger) (Provider, error) {
	log = log.With(logger.Scope("tracing"))
	oc := cfg.Otel
	if !oc.Enabled() {
		otel.SetTracerProvider(noop.NewTracerProvider())
		log.Info("tracing off")
		return Provider{}, nil
	}

	ctx := context.Background()
	exp, err := exporter(ctx, oc)
	if err != nil {
		return Provider{}, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(serviceResource(ctx, cfg, log)),
		sdktrace.WithSampler(sampler(oc)),
	)
	otel.SetTracerProvider(tp)

	log.Info("tracing on",
		slog.String("endpoint", oc.ExporterEndpoint),
		slog.String("service", oc.ServiceName),
		slog.Float64("sampling_rate", oc.SamplingRate),
	)
	return Provider{SDK: tp}, nil
}

func exporter(ctx context.Context, oc config.OtelConfig) (*otlptrace.Exporter, error) {
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(oc.ExporterEndpoint)}
	if oc.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

// serviceResource names the website and its environment. Detection failures
// fall back to an empty resource.
func serviceResource(ctx context.Context, cfg *config.Config, log *slog.Logger) *resource.Resource {
	res, err := resource.New(ctx,
		resource.WithSchemaURL(semconv.SchemaURL),
		resource.WithAttributes(
			semconv.ServiceName(cfg.Otel.ServiceName),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
		resource.WithFromEnv(),
		resource.WithProcess(),
	)
	if err != nil {
		log.Warn("resource detection failed", logger.Error(err))
		return resource.Empty()
	}
	return res
}

// sampler keeps every trace at a rate of 1 or more. Below that, traces are
// kept by trace id ratio.
func sampler(oc config.OtelConfig) sdktrace.Sampler {
	if oc.AlwaysSample() {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.TraceIDRatioBased(oc.SamplingRate)
}

func registerShutdown(lc fx.Lifecycle, p providerIn, log *slog.Logger) {
	if p.SDK == nil {
		return
	}
	lc.Append(fx.StopHook(func(ctx context.Context) error {
		log.Info("flushing spans")
		return p.SDK.Shutdown(ctx)
	}))
}

func registerMiddleware(e *echo.Echo, cfg *config.Config) {
	if !cfg.Otel.Enabled() {
		return
	}
	skip := func(c echo.Context) bool {
		return untraced(c.Request().URL.Path, cfg.Media.URLPrefix)
	}
	e.Use(otelecho.Middleware(cfg.Otel.ServiceName, otelecho.WithSkipper(skip)))
}

// untraced reports whether p is a health check, a metrics scrape or a static
// or media file. Only pages and the catalog API are traced.
func untraced(p, mediaPrefix string) bool {
	switch p {
	case "/health", "/healthz", "/ready", "/metrics":
		return true
	}
	if strings.HasPrefix(p, "/static/") {
		return true
	}
	return mediaPrefix != "" && strings.HasPrefix(p, strings.TrimSuffix(mediaPrefix, "/")+"/")
}
