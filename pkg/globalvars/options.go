package globalvars

import (
	"log/slog"

	"github.com/randalmurphal/globalvars/pkg/globalvars/event"
	"github.com/randalmurphal/globalvars/pkg/globalvars/observability"
)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger for registry activity.
// Writes and removals log at DEBUG, Clear at INFO, rejected keys at WARN.
// Default: a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics enables OpenTelemetry metrics for registry operations using
// the global meter provider.
func WithMetrics(enabled bool) Option {
	return func(r *Registry) {
		if enabled {
			r.metrics = observability.NewMetricsRecorder()
		} else {
			r.metrics = observability.NoopMetrics{}
		}
	}
}

// WithMetricsRecorder sets a specific metrics recorder.
func WithMetricsRecorder(m observability.MetricsRecorder) Option {
	return func(r *Registry) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithMaxSubscribers caps the number of change subscribers.
// Default: 0 (unlimited)
func WithMaxSubscribers(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.busConfig.MaxSubscribers = n
		}
	}
}

// WithSubscriberErrorHandler is called, in addition to logging, when a
// change subscriber fails.
func WithSubscriberErrorHandler(fn func(*event.HandlerError)) Option {
	return func(r *Registry) {
		r.onSubscriberError = fn
	}
}
