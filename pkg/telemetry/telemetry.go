// Package telemetry exports lander traces over OTLP/HTTP.
package telemetry

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/nais/lander/pkg/version"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	otrace "go.opentelemetry.io/otel/trace"
)

const (
	exportInterval = 5 * time.Second

	instrumentationName = "github.com/nais/lander"
)

// New installs a global tracer provider exporting to collectorURL.
// Shut the returned provider down on exit to flush buffered spans.
func New(ctx context.Context, serviceName string, collectorURL string) (*trace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(collectorURL))
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	provider := trace.NewTracerProvider(
		trace.WithBatcher(exporter, trace.WithBatchTimeout(exportInterval)),
		trace.WithResource(Resource(serviceName)),
	)

	otel.SetTextMapPropagator(Propagator())
	otel.SetTracerProvider(provider)

	return provider, nil
}

// Resource describes the running lander process.
func Resource(serviceName string) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(version.Version()),
		semconv.OSName(runtime.GOOS),
	)
}

// Propagator carries W3C trace context and baggage.
func Propagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
}

// Tracer returns the lander tracer. Spans are dropped until New has run.
func Tracer() otrace.Tracer {
	return otel.Tracer(instrumentationName)
}
