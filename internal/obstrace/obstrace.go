// Package obstrace wraps a decomposition run in an OpenTelemetry span,
// grounded in the teacher pack's tracing collaborator
// (yesoreyeram-thaiyyal/backend/pkg/telemetry, which obtains a tracer via
// a Provider and calls tracer.Start(ctx, name, trace.WithAttributes(...))
// around a unit of work). reachd has no exporter wired up by default —
// Tracer() resolves against whatever TracerProvider the process registers
// globally, falling back to OpenTelemetry's own no-op provider — so this
// package costs nothing when no collector is configured and becomes a
// real span the moment one is.
package obstrace

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/noaa-owp/reach-decomp/internal/engine"

func tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// StartDecomposition opens the "reach.decompose" span used around one
// ingest-through-depth-normalization run, tagging it with the node and
// waterbody-row counts available before the walk begins.
func StartDecomposition(ctx context.Context, nodeRows, waterbodyRows int) (context.Context, trace.Span) {
	return tracer().Start(ctx, "reach.decompose",
		trace.WithAttributes(
			attribute.Int("reachd.ingest.connection_rows", nodeRows),
			attribute.Int("reachd.ingest.waterbody_rows", waterbodyRows),
		),
	)
}

// EndDecomposition closes span with the outcome of a run: reach and node
// counts on success, or the error recorded and the span status set to
// Error when the pipeline failed (cycle detection, disjointness failure).
func EndDecomposition(span trace.Span, nodeCount, reachCount int, err error) {
	defer span.End()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetAttributes(
		attribute.Int("reachd.nodes_processed", nodeCount),
		attribute.Int("reachd.reaches_emitted", reachCount),
	)
	span.SetStatus(codes.Ok, "")
}
