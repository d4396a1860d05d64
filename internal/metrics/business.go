package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Recorder records business operation outcomes. Domains are the service
// areas ("pan", "crypto", "tokenization"); operations are the calls within
// them ("validate", "encrypt", "tokenize").
type Recorder interface {
	// Observe records one completed operation: a count and a duration
	// sample, labeled success or error from err.
	Observe(ctx context.Context, domain, operation string, duration time.Duration, err error)
}

type recorder struct {
	operationCounter metric.Int64Counter
	durationHisto    metric.Float64Histogram
}

// NewRecorder creates a Recorder backed by the given meter provider. The
// namespace prefixes metric names.
func NewRecorder(meterProvider metric.MeterProvider, namespace string) (Recorder, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of business operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of business operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &recorder{
		operationCounter: operationCounter,
		durationHisto:    durationHisto,
	}, nil
}

func (r *recorder) Observe(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}

	attrs := metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)

	r.operationCounter.Add(ctx, 1, attrs)
	r.durationHisto.Record(ctx, duration.Seconds(), attrs)
}

// NoOpRecorder discards all observations, for when metrics are disabled.
type NoOpRecorder struct{}

// NewNoOpRecorder creates a Recorder that discards all observations.
func NewNoOpRecorder() Recorder {
	return &NoOpRecorder{}
}

// Observe does nothing.
func (n *NoOpRecorder) Observe(context.Context, string, string, time.Duration, error) {}
