package tracing

import (
	"context"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	SetTracer(provider.Tracer("test"))
	t.Cleanup(func() {
		SetTracer(nil)
		_ = provider.Shutdown(context.Background())
	})
	return recorder
}

func TestStartSpan_NoTracer(t *testing.T) {
	SetTracer(nil)

	ctx, span := StartSpan(context.Background(), "noop")
	defer span.End()

	assert.Nil(t, GetActiveSpan(ctx))
	assert.Equal(t, "", GetTraceID(ctx))
	assert.Empty(t, InjectHeaders(ctx))
}

func TestStartSpan_Recorded(t *testing.T) {
	recorder := withRecorder(t)

	ctx, span := StartSpan(context.Background(), "reconciliation.Service.ReconcileAccounts")
	assert.NotEmpty(t, GetTraceID(ctx))
	assert.NotEmpty(t, GetTraceParent(ctx))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "reconciliation.Service.ReconcileAccounts", ended[0].Name())
}

func TestHeadersRoundTrip(t *testing.T) {
	withRecorder(t)

	ctx, span := StartSpan(context.Background(), "producer")
	defer span.End()

	headers := InjectHeaders(ctx)
	require.Contains(t, headers, "traceparent")

	consumerCtx := ExtractHeaders(context.Background(), headers)
	consumerCtx, child := StartSpan(consumerCtx, "consumer")
	defer child.End()

	assert.Equal(t, GetTraceID(ctx), GetTraceID(consumerCtx))
}

func TestProvider_Disabled(t *testing.T) {
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	p := NewProvider(Config{ServiceName: "fern", Exporter: ExporterNone}, logger)

	require.NoError(t, p.Start(context.Background()))
	require.NoError(t, p.Stop(context.Background()))
	assert.Equal(t, "tracing", p.GetName())
}

func TestProvider_LogExporter(t *testing.T) {
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	p := NewProvider(Config{ServiceName: "fern", Exporter: ExporterLog}, logger)

	require.NoError(t, p.Start(context.Background()))
	ctx, span := StartSpan(context.Background(), "test")
	assert.NotEmpty(t, GetTraceID(ctx))
	span.End()
	require.NoError(t, p.Stop(context.Background()))
}

func TestProvider_UnknownExporter(t *testing.T) {
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	p := NewProvider(Config{ServiceName: "fern", Exporter: "jaeger"}, logger)

	assert.Error(t, p.Start(context.Background()))
}
