// Package telemetry records strip interactions as OpenTelemetry spans.
package telemetry

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	// EndpointEnv enables OTLP export when set.
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides DefaultServiceName.
	ServiceNameEnv     = "OTEL_SERVICE_NAME"
	DefaultServiceName = "stripdemo"

	tracerName = "stripkit/strip"
	// SpanSelect is the span name for a selection change.
	SpanSelect = "strip.select"
)

// Selection describes one change of a strip's active index.
type Selection struct {
	Strip    string // which strip, e.g. "sections"
	Index    int
	Previous int
	Label    string
	Source   string // "tap" or "external"
}

// Recorder turns selections into spans. A nil *Recorder is valid and records nothing.
type Recorder struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewRecorder records into an existing tracer provider.
func NewRecorder(provider *sdktrace.TracerProvider) *Recorder {
	return &Recorder{
		provider: provider,
		tracer:   provider.Tracer(tracerName),
	}
}

// NewOTLPRecorder creates a recorder exporting over OTLP/HTTP if OTEL_EXPORTER_OTLP_ENDPOINT
// is set. Returns nil, nil when the endpoint is not configured.
func NewOTLPRecorder(ctx context.Context) (*Recorder, error) {
	if os.Getenv(EndpointEnv) == "" {
		return nil, nil
	}

	// the exporter reads the endpoint URL (scheme included) from the environment itself
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create otlp exporter: %w", err)
	}

	serviceName := os.Getenv(ServiceNameEnv)
	if serviceName == "" {
		serviceName = DefaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return NewRecorder(provider), nil
}

// RecordSelection emits one SpanSelect span.
func (r *Recorder) RecordSelection(ctx context.Context, sel Selection) {
	if r == nil {
		return
	}
	_, span := r.tracer.Start(ctx, SpanSelect)
	span.SetAttributes(
		attribute.String("stripkit.strip", sel.Strip),
		attribute.Int("stripkit.index", sel.Index),
		attribute.Int("stripkit.previous_index", sel.Previous),
		attribute.String("stripkit.label", sel.Label),
		attribute.String("stripkit.source", sel.Source),
	)
	span.End()
}

// Shutdown flushes pending spans and closes the exporter.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	if err := r.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("telemetry: shutdown: %w", err)
	}
	return nil
}
