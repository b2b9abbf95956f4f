package astar

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/pdrpinto/astarkit"

func startSearchSpan(ctx context.Context, tracer trace.Tracer, searchID string, collectionSize int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "astar.Search",
		trace.WithAttributes(
			attribute.String("astar.search_id", searchID),
			attribute.Int("astar.collection_size", collectionSize),
		),
	)
}

func endSearchSpan[NodeType Node[NodeType]](span trace.Span, result *Result[NodeType], err error) {
	span.SetAttributes(
		attribute.String("astar.status", result.Status().String()),
		attribute.Int("astar.expanded", result.Expanded()),
	)
	if weight, weightErr := result.Weight(); weightErr == nil {
		span.SetAttributes(attribute.Float64("astar.weight", weight))
	}
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrExpansionLimit) {
			span.SetStatus(codes.Error, "expansion limit")
		} else {
			span.SetStatus(codes.Error, "cancelled")
		}
		return
	}
	span.SetStatus(codes.Ok, "")
}
