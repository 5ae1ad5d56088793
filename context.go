// Correlation propagation through context.Context. The wrapper attaches the
// call's CorrelationContext to the context it passes into the wrapped method,
// so nested code can annotate the exit line for its own call instead of
// relying on the best-effort Registry.Current accessor.
package muon

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// contextKey is an unexported type for context keys defined in this package.
// This prevents collisions with keys defined in other packages.
type contextKey string

const correlationKey contextKey = "muon_correlation"

// ContextWithCorrelation attaches a correlation context to ctx.
// The instrumentation wrapper does this automatically before invoking the
// wrapped method.
func ContextWithCorrelation(ctx context.Context, cc *CorrelationContext) context.Context {
	return context.WithValue(ctx, correlationKey, cc)
}

// CorrelationFromContext returns the correlation context of the enclosing
// instrumented call, if any. This is the safe way for nested code to set
// exit details or read its own correlation id.
func CorrelationFromContext(ctx context.Context) (*CorrelationContext, bool) {
	cc, ok := ctx.Value(correlationKey).(*CorrelationContext)
	return cc, ok
}

// extractContextZapFields pulls correlation and trace identifiers from
// context. Lazily allocates the slice only when fields are found.
func extractContextZapFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}

	var fields []zap.Field

	if cc, ok := ctx.Value(correlationKey).(*CorrelationContext); ok {
		fields = make([]zap.Field, 0, 4)
		fields = append(fields, zap.String("correlation_id", strconv.FormatInt(cc.ID, 16)))
	}

	// Extract OTEL trace context (if available)
	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.IsValid() {
		if fields == nil {
			fields = make([]zap.Field, 0, 4)
		}
		fields = append(fields,
			zap.String("trace_id", spanCtx.TraceID().String()),
			zap.String("span_id", spanCtx.SpanID().String()),
		)
	}

	return fields
}
