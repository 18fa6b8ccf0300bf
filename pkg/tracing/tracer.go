// Package tracing is the span helper used by domain packages.
//
// Without a registered TracerProvider the global no-op provider is used, so
// calls are inert in tests and local runs.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "zcmetal"

// Start opens a child span of ctx. Callers must End the span.
//
//	ctx, span := tracing.Start(ctx, "catalog.load",
//	    attribute.String("zcmetal.catalog.kind", string(kind)),
//	)
//	defer span.End()
func Start(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(attrs...))
}
