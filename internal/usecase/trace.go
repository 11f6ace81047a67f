package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	usecaseTracer   = otel.Tracer("sports-analytics/internal/usecase")
	usecaseNoopSpan = trace.SpanFromContext(context.Background())
)

// startUsecaseSpan only opens a child span under an already traced request, so
// CLI and MCP calls without a parent stay span-free.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || name == "" {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan records err on span before ending it. Caller mistakes are not
// marked as span errors.
func endSpan(span trace.Span, err error) {
	if err != nil && !isCallerError(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func teamAttr(teamID int64) attribute.KeyValue {
	return attribute.Int64("sports.team_id", teamID)
}

func playerAttr(playerID int64) attribute.KeyValue {
	return attribute.Int64("sports.player_id", playerID)
}
