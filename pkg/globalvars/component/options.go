package component

import (
	"log/slog"

	"github.com/randalmurphal/globalvars/pkg/globalvars/config"
	"github.com/randalmurphal/globalvars/pkg/globalvars/observability"
)

// Option configures a collaborator or a Binding.
type Option func(*options)

type options struct {
	id             string
	logger         *slog.Logger
	metrics        observability.MetricsRecorder
	spans          observability.SpanManager
	missingMessage string
	nullTypeName   string
	includeSchemas bool
}

func defaultOptions() options {
	return options{
		logger:         observability.DiscardLogger(),
		metrics:        observability.NoopMetrics{},
		spans:          observability.NoopSpanManager{},
		missingMessage: config.DefaultMissingMessage,
		nullTypeName:   config.DefaultNullTypeName,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithID sets the instance ID. Default: a random UUID.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

// WithLogger sets the logger. Records carry component and component_id.
// Default: a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics enables OpenTelemetry metrics using the global meter provider.
func WithMetrics(enabled bool) Option {
	return func(o *options) {
		if enabled {
			o.metrics = observability.NewMetricsRecorder()
		} else {
			o.metrics = observability.NoopMetrics{}
		}
	}
}

// WithMetricsRecorder sets a specific metrics recorder.
func WithMetricsRecorder(m observability.MetricsRecorder) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithTracing enables OpenTelemetry spans around Solve using the global
// tracer provider.
func WithTracing(enabled bool) Option {
	return func(o *options) {
		if enabled {
			o.spans = observability.NewSpanManager()
		} else {
			o.spans = observability.NoopSpanManager{}
		}
	}
}

// WithSpanManager sets a specific span manager.
func WithSpanManager(s observability.SpanManager) Option {
	return func(o *options) {
		if s != nil {
			o.spans = s
		}
	}
}

// WithMissingMessage sets the value a Getter reports for a missing key.
// Default: "No value found for the provided key"
func WithMissingMessage(msg string) Option {
	return func(o *options) {
		o.missingMessage = msg
	}
}

// WithNullTypeName sets the type name reported for nil and missing values.
// Default: "null"
func WithNullTypeName(name string) Option {
	return func(o *options) {
		o.nullTypeName = name
	}
}

// WithSchemas makes a Viewer report a JSON schema for every value.
func WithSchemas(enabled bool) Option {
	return func(o *options) {
		o.includeSchemas = enabled
	}
}

// OptionsFromSettings translates loaded settings into options. Logger
// level is left to the caller, who owns the handler.
func OptionsFromSettings(s config.Settings) []Option {
	return []Option{
		WithMissingMessage(s.Getter.MissingMessage),
		WithNullTypeName(s.NullTypeName),
		WithSchemas(s.Viewer.IncludeSchemas),
		WithMetrics(s.Observability.Metrics),
		WithTracing(s.Observability.Tracing),
	}
}
