package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInit_Disabled(t *testing.T) {
	t.Parallel()

	tp, shutdown, err := Init(context.Background(), Config{ServiceName: "test"})
	require.NoError(t, err)
	require.NotNil(t, tp)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))

	_, span := tp.Tracer("t").Start(context.Background(), "op")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
}

func TestNewProvider_Resource(t *testing.T) {
	t.Parallel()

	exp := tracetest.NewInMemoryExporter()
	tp := NewProvider(Config{ServiceName: "storefront-sync", ServiceVersion: "1.2.3", SampleRate: 1},
		sdktrace.WithSyncer(exp))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("t").Start(context.Background(), "op")
	span.End()

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	attrs := map[string]string{}
	for _, kv := range spans[0].Resource.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "storefront-sync", attrs["service.name"])
	assert.Equal(t, "1.2.3", attrs["service.version"])
}

func TestSampler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rate    float64
		sampled bool
	}{
		{name: "always", rate: 1, sampled: true},
		{name: "above one", rate: 3, sampled: true},
		{name: "never", rate: 0, sampled: false},
		{name: "negative", rate: -1, sampled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			exp := tracetest.NewInMemoryExporter()
			tp := NewProvider(Config{ServiceName: "s", SampleRate: tt.rate}, sdktrace.WithSyncer(exp))
			t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

			_, span := tp.Tracer("t").Start(context.Background(), "op")
			assert.Equal(t, tt.sampled, span.SpanContext().IsSampled())
			span.End()
		})
	}

	assert.Contains(t, Sampler(0.25).Description(), "TraceIDRatioBased")
}
