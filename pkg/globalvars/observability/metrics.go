package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records globalvars metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordMutation records a set, remove, or clear and the resulting entry count.
	RecordMutation(ctx context.Context, op string, entries int)

	// RecordLookup records a read and whether it found a matching value.
	RecordLookup(ctx context.Context, hit bool)

	// RecordSolve records a component evaluation.
	RecordSolve(ctx context.Context, component string, duration time.Duration, err error)

	// RecordExpire records how many components a change expired.
	RecordExpire(ctx context.Context, trigger string, expired int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	mutations    metric.Int64Counter
	entries      metric.Int64Gauge
	lookups      metric.Int64Counter
	solves       metric.Int64Counter
	solveErrors  metric.Int64Counter
	solveLatency metric.Float64Histogram
	expirations  metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("globalvars")

	mutations, err := meter.Int64Counter("globalvars.registry.mutations",
		metric.WithDescription("Number of registry mutations by operation"),
	)
	if err != nil {
		return nil, err
	}

	entries, err := meter.Int64Gauge("globalvars.registry.entries",
		metric.WithDescription("Entries held by the registry after the last mutation"),
	)
	if err != nil {
		return nil, err
	}

	lookups, err := meter.Int64Counter("globalvars.registry.lookups",
		metric.WithDescription("Number of registry reads by outcome"),
	)
	if err != nil {
		return nil, err
	}

	solves, err := meter.Int64Counter("globalvars.component.solves",
		metric.WithDescription("Number of component evaluations"),
	)
	if err != nil {
		return nil, err
	}

	solveErrors, err := meter.Int64Counter("globalvars.component.errors",
		metric.WithDescription("Number of component evaluations that reported an error"),
	)
	if err != nil {
		return nil, err
	}

	solveLatency, err := meter.Float64Histogram("globalvars.component.latency_ms",
		metric.WithDescription("Component evaluation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	expirations, err := meter.Int64Counter("globalvars.component.expirations",
		metric.WithDescription("Number of components expired by registry changes"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		mutations:    mutations,
		entries:      entries,
		lookups:      lookups,
		solves:       solves,
		solveErrors:  solveErrors,
		solveLatency: solveLatency,
		expirations:  expirations,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordMutation records a registry mutation.
func (m *otelMetrics) RecordMutation(ctx context.Context, op string, entries int) {
	m.mutations.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
	m.entries.Record(ctx, int64(entries))
}

// RecordLookup records a registry read.
func (m *otelMetrics) RecordLookup(ctx context.Context, hit bool) {
	m.lookups.Add(ctx, 1, metric.WithAttributes(attribute.Bool("hit", hit)))
}

// RecordSolve records a component evaluation.
func (m *otelMetrics) RecordSolve(ctx context.Context, component string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.String("component", component))

	m.solves.Add(ctx, 1, attrs)
	m.solveLatency.Record(ctx, float64(duration.Microseconds())/1000, attrs)
	if err != nil {
		m.solveErrors.Add(ctx, 1, attrs)
	}
}

// RecordExpire records a downstream expiry.
func (m *otelMetrics) RecordExpire(ctx context.Context, trigger string, expired int) {
	m.expirations.Add(ctx, int64(expired), metric.WithAttributes(attribute.String("trigger", trigger)))
}
