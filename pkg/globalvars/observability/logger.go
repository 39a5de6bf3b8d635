// Package observability provides logging, metrics, and tracing helpers for
// globalvars.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry, plus a Prometheus collector
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"io"
	"log/slog"
	"time"
)

// DiscardLogger returns a logger that drops every record.
// The registry uses it when no logger is configured.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// EnrichLogger adds component context to a logger.
//
// Example:
//
//	enriched := EnrichLogger(logger, "getter", id)
//	enriched.Info("solving") // includes component, component_id
func EnrichLogger(logger *slog.Logger, component, componentID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("component", component),
		slog.String("component_id", componentID),
	)
}

// LogSet logs a registry write.
func LogSet(logger *slog.Logger, key, valueType string, revision uint64) {
	if logger == nil {
		return
	}
	logger.Debug("global variable set",
		slog.String("key", key),
		slog.String("value_type", valueType),
		slog.Uint64("revision", revision),
	)
}

// LogRemove logs a registry delete that removed an entry.
func LogRemove(logger *slog.Logger, key string, revision uint64) {
	if logger == nil {
		return
	}
	logger.Debug("global variable removed",
		slog.String("key", key),
		slog.Uint64("revision", revision),
	)
}

// LogClear logs a registry reset.
func LogClear(logger *slog.Logger, dropped int, revision uint64) {
	if logger == nil {
		return
	}
	logger.Info("global variables cleared",
		slog.Int("dropped", dropped),
		slog.Uint64("revision", revision),
	)
}

// LogInvalidKey logs a rejected write.
func LogInvalidKey(logger *slog.Logger, op string) {
	if logger == nil {
		return
	}
	logger.Warn("rejected empty key",
		slog.String("operation", op),
	)
}

// LogSubscriberError logs a failing change subscriber (non-fatal).
func LogSubscriberError(logger *slog.Logger, subscriptionID, change string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("change subscriber failed",
		slog.String("subscription_id", subscriptionID),
		slog.String("change", change),
		slog.String("error", err.Error()),
	)
}

// LogSolveStart logs the start of a component evaluation.
func LogSolveStart(logger *slog.Logger) {
	if logger == nil {
		return
	}
	logger.Debug("solve starting")
}

// LogSolveComplete logs successful component evaluation.
func LogSolveComplete(logger *slog.Logger, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("solve completed",
		slog.Float64("duration_ms", durationMs),
	)
}

// LogSolveError logs a component evaluation that reported an error.
func LogSolveError(logger *slog.Logger, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("solve failed",
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogExpire logs a downstream expiry triggered by a registry change.
func LogExpire(logger *slog.Logger, trigger string, kinds []string, expired int) {
	if logger == nil {
		return
	}
	logger.Debug("expired dependent components",
		slog.String("trigger", trigger),
		slog.Any("kinds", kinds),
		slog.Int("expired", expired),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
