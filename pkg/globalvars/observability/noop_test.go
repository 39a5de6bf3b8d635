package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetrics(t *testing.T) {
	var m MetricsRecorder = NoopMetrics{}
	ctx := context.Background()

	assert.NotPanics(t, func() {
		m.RecordMutation(ctx, "set", 1)
		m.RecordLookup(ctx, true)
		m.RecordSolve(ctx, "getter", time.Millisecond, errors.New("x"))
		m.RecordExpire(ctx, "clear", 2)
	})
}

func TestNoopSpanManager(t *testing.T) {
	var m SpanManager = NoopSpanManager{}
	ctx := context.Background()

	newCtx, span := m.StartSolveSpan(ctx, "getter", "id")
	assert.Equal(t, ctx, newCtx)
	assert.False(t, span.IsRecording())

	assert.NotPanics(t, func() {
		m.AddSpanEvent(ctx, "event", attribute.String("k", "v"))
		m.EndSpanWithError(span, errors.New("x"))
	})
}
