package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestRecordError(t *testing.T) {
	sr := tracetest.NewSpanRecorder()

	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, span := StartSpan(context.Background(), "addons.open", attribute.String("app.name", "myapp"))
	RecordError(span, errors.New("boom"), "failed to open add-on dashboard")
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)

	assert.Equal(t, "addons.open", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "failed to open add-on dashboard", spans[0].Status().Description)
	assert.Contains(t, spans[0].Attributes(), attribute.String("app.name", "myapp"))
}

func TestInitWithoutExporter(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv(CollectorURLEnvKey, "")

	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	shutdown, err := Init(context.Background())
	require.NoError(t, err)

	assert.NoError(t, shutdown(context.Background()))
}

func TestNewExporter(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv(CollectorURLEnvKey, "")

	exporter, err := newExporter(context.Background())
	require.NoError(t, err)
	assert.Nil(t, exporter)

	t.Setenv("LOG_LEVEL", "trace")

	exporter, err = newExporter(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, exporter)
}

func TestNewResource(t *testing.T) {
	res := newResource()

	v, ok := res.Set().Value("build.os")
	require.True(t, ok)
	assert.NotEmpty(t, v.AsString())
}
