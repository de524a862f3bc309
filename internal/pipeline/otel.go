package pipeline

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// StageTracer wraps an OpenTelemetry tracer for pipeline spans. With a
// noop tracer (tracing disabled) every call is free.
type StageTracer struct {
	tracer trace.Tracer
}

// NewStageTracer creates a tracer for pipeline spans.
func NewStageTracer(tracer trace.Tracer) *StageTracer {
	return &StageTracer{tracer: tracer}
}

// TraceRun opens the span covering a whole pipeline run.
func (st *StageTracer) TraceRun(ctx context.Context, datasetName, filePath string) (context.Context, trace.Span) {
	return st.tracer.Start(ctx, "pipeline.run",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("dataset.name", datasetName),
			attribute.String("dataset.path", filePath),
		),
	)
}

// TraceStep opens a span for one cleaning step.
func (st *StageTracer) TraceStep(ctx context.Context, stepID string) (context.Context, trace.Span) {
	return st.tracer.Start(ctx, fmt.Sprintf("pipeline.step.%s", stepID),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("step.id", stepID)),
	)
}

// EndStep closes a step span, recording the error if the step failed.
func EndStep(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
