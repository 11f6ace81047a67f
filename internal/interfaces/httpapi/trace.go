package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var (
	apiTracer = otel.Tracer("sports-analytics/internal/interfaces/httpapi")
	noopSpan  = trace.SpanFromContext(context.Background())
)

// startHandlerSpan opens the span for one route handler, tagged with the
// matched ServeMux pattern.
func startHandlerSpan(r *http.Request, handler string) (context.Context, trace.Span) {
	ctx, span := startSpan(r.Context(), handlerSpanPrefix+handler)
	if r.Pattern != "" {
		span.SetAttributes(attribute.String("http.route", r.Pattern))
	}
	return ctx, span
}

// startSpan is a no-op for untraced requests (health checks) and for helper
// names outside the handler namespace.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, handlerSpanPrefix)
}
