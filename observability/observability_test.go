package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestStartSpan_NoProvider(t *testing.T) {
	// Without a configured provider spans are no-ops but must still work.
	ctx, span := StartSpan(context.Background(), "test.op")
	if span == nil {
		t.Fatal("expected non-nil span")
	}
	SetSpanAttribute(ctx, "key", "value")
	SetSpanError(ctx, errors.New("boom"))
	span.End()
}

func TestStartSpan_WithProvider(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background())

	ctx, span := tp.Tracer("test").Start(context.Background(), "parent")
	defer span.End()

	SetSpanAttribute(ctx, "count", 3)
	SetSpanAttribute(ctx, "flag", true)
	SetSpanAttribute(ctx, "names", []string{"a", "b"})
	SetSpanError(ctx, errors.New("recorded"))

	if got := SpanFromContext(ctx); got == nil {
		t.Error("expected span in context")
	}
}

func TestNewMetrics_Record(t *testing.T) {
	mp := sdkmetric.NewMeterProvider()
	defer mp.Shutdown(context.Background())

	m, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	m.RecordOperation(ctx, "grep", "filter.invoke", "ok", 10*time.Millisecond)
	m.RecordError(ctx, "invoke", "grep")
}

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("shkit")
	if cfg.ServiceName != "shkit" {
		t.Errorf("expected service name shkit, got %q", cfg.ServiceName)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected full sampling by default, got %f", cfg.SampleRate)
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("shkit")
	if cfg.Interval <= 0 {
		t.Error("expected a positive default export interval")
	}
}
