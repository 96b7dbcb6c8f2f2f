package filter

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/shkit/logger"
	"github.com/kbukum/shkit/observability"
)

// WithLogging wraps a Filter with invocation logging. Each invocation gets
// a fresh run id; the id, duration and outcome are logged through log.
func WithLogging(f *Filter, name string, log *logger.Logger) *Filter {
	return New(f.input, f.output, func(ctx context.Context, src any, dst io.Writer) (any, error) {
		runID := uuid.NewString()
		ctx = logger.ContextWithRunID(ctx, runID)
		start := time.Now()
		result, err := f.action(ctx, src, dst)

		fields := map[string]interface{}{
			logger.FieldFilter:   name,
			logger.FieldRunID:    runID,
			logger.FieldDuration: time.Since(start).Milliseconds(),
		}
		if err != nil {
			fields[logger.FieldError] = err.Error()
			log.Error("filter failed", fields)
		} else {
			log.Debug("filter completed", fields)
		}
		return result, err
	})
}

// WithTracing wraps a Filter with OpenTelemetry span creation. Each
// invocation creates a span named "filter.{name}".
func WithTracing(f *Filter, name string) *Filter {
	return New(f.input, f.output, func(ctx context.Context, src any, dst io.Writer) (any, error) {
		ctx, span := observability.StartSpan(ctx, "filter."+name)
		defer span.End()

		observability.SetSpanAttribute(ctx, "filter.input_kind", string(f.input.Kind))
		observability.SetSpanAttribute(ctx, "filter.output_kind", string(f.output.Kind))

		result, err := f.action(ctx, src, dst)
		if err != nil {
			observability.SetSpanError(ctx, err)
		}
		return result, err
	})
}

// WithMetrics wraps a Filter with metric recording: invocation count,
// duration and errors.
func WithMetrics(f *Filter, name string, metrics *observability.Metrics) *Filter {
	return New(f.input, f.output, func(ctx context.Context, src any, dst io.Writer) (any, error) {
		start := time.Now()
		result, err := f.action(ctx, src, dst)
		duration := time.Since(start)

		status := "ok"
		if err != nil {
			status = "error"
			metrics.RecordError(ctx, "invoke", name)
		}
		metrics.RecordOperation(ctx, name, "filter.invoke", status, duration)

		return result, err
	})
}
