// Package tracing wires OpenTelemetry tracing.
package tracing

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/superfly/herokuctl/internal/buildinfo"
)

const tracerName = "github.com/superfly/herokuctl"

// CollectorURLEnvKey names the environment variable holding the OTLP/HTTP
// endpoint spans are exported to.
const CollectorURLEnvKey = "HEROKU_TRACE_COLLECTOR_URL"

// StartSpan starts an internal span tagged with attrs.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// RecordError marks span as failed with err.
func RecordError(span trace.Span, err error, description string) {
	span.RecordError(err)
	span.SetStatus(codes.Error, description)
}

// Init installs the global tracer provider and returns the function that
// flushes and stops it.
func Init(ctx context.Context) (shutdown func(context.Context) error, err error) {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(newResource()),
	}

	switch exporter, err := newExporter(ctx); {
	case err != nil:
		return nil, err
	case exporter != nil:
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

// newExporter returns the exporter the environment asks for: stdout when
// LOG_LEVEL is trace, the collector when CollectorURLEnvKey is set, none
// otherwise.
func newExporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	if os.Getenv("LOG_LEVEL") == "trace" {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}

	if url := os.Getenv(CollectorURLEnvKey); url != "" {
		return otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(url))
	}

	return nil, nil
}

func newResource() *resource.Resource {
	return resource.NewWithAttributes(semconv.SchemaURL,
		semconv.ServiceNameKey.String(buildinfo.Name()),
		semconv.ServiceVersionKey.String(buildinfo.Version().String()),
		attribute.String("build.commit", buildinfo.Commit()),
		attribute.String("build.os", buildinfo.OS()),
		attribute.String("build.arch", buildinfo.Arch()),
	)
}
