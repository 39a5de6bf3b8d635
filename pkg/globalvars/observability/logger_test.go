package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHandler captures log records as JSON lines.
type testHandler struct {
	buf   *bytes.Buffer
	level slog.Level
	attrs []slog.Attr
}

func newTestHandler() *testHandler {
	return &testHandler{
		buf:   &bytes.Buffer{},
		level: slog.LevelDebug,
	}
}

func (h *testHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *testHandler) Handle(_ context.Context, r slog.Record) error {
	data := map[string]any{
		"level": r.Level.String(),
		"msg":   r.Message,
	}
	for _, attr := range h.attrs {
		data[attr.Key] = attr.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		data[a.Key] = a.Value.Any()
		return true
	})
	return json.NewEncoder(h.buf).Encode(data)
}

func (h *testHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &testHandler{buf: h.buf, level: h.level, attrs: merged}
}

func (h *testHandler) WithGroup(string) slog.Handler {
	return h
}

func (h *testHandler) lastRecord() map[string]any {
	lines := bytes.Split(h.buf.Bytes(), []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		if len(lines[i]) == 0 {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal(lines[i], &m); err == nil {
			return m
		}
	}
	return nil
}

func TestDiscardLogger(t *testing.T) {
	logger := DiscardLogger()
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestEnrichLogger(t *testing.T) {
	t.Run("adds component and component_id", func(t *testing.T) {
		h := newTestHandler()
		enriched := EnrichLogger(slog.New(h), "getter", "abc")
		enriched.Info("hello")

		record := h.lastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "getter", record["component"])
		assert.Equal(t, "abc", record["component_id"])
		assert.Equal(t, "hello", record["msg"])
	})

	t.Run("nil logger returns nil", func(t *testing.T) {
		assert.Nil(t, EnrichLogger(nil, "getter", "abc"))
	})
}

func TestLogSet(t *testing.T) {
	h := newTestHandler()
	LogSet(slog.New(h), "width", "int", 3)

	record := h.lastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "global variable set", record["msg"])
	assert.Equal(t, "width", record["key"])
	assert.Equal(t, "int", record["value_type"])
	assert.Equal(t, float64(3), record["revision"])
}

func TestLogRemove(t *testing.T) {
	h := newTestHandler()
	LogRemove(slog.New(h), "width", 4)

	record := h.lastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "global variable removed", record["msg"])
	assert.Equal(t, "width", record["key"])
}

func TestLogClear(t *testing.T) {
	h := newTestHandler()
	LogClear(slog.New(h), 5, 9)

	record := h.lastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, float64(5), record["dropped"])
	assert.Equal(t, float64(9), record["revision"])
}

func TestLogInvalidKey(t *testing.T) {
	h := newTestHandler()
	LogInvalidKey(slog.New(h), "set")

	record := h.lastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "set", record["operation"])
}

func TestLogSubscriberError(t *testing.T) {
	h := newTestHandler()
	LogSubscriberError(slog.New(h), "7", "set(a)@1", errors.New("boom"))

	record := h.lastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "7", record["subscription_id"])
	assert.Equal(t, "set(a)@1", record["change"])
	assert.Equal(t, "boom", record["error"])
}

func TestLogSolve(t *testing.T) {
	t.Run("start and complete at DEBUG", func(t *testing.T) {
		h := newTestHandler()
		logger := slog.New(h)

		LogSolveStart(logger)
		assert.Equal(t, "solve starting", h.lastRecord()["msg"])

		LogSolveComplete(logger, 1.5)
		record := h.lastRecord()
		assert.Equal(t, "solve completed", record["msg"])
		assert.Equal(t, 1.5, record["duration_ms"])
	})

	t.Run("error at ERROR", func(t *testing.T) {
		h := newTestHandler()
		LogSolveError(slog.New(h), errors.New("empty key"), 0.25)

		record := h.lastRecord()
		assert.Equal(t, "ERROR", record["level"])
		assert.Equal(t, "empty key", record["error"])
	})
}

func TestLogExpire(t *testing.T) {
	h := newTestHandler()
	LogExpire(slog.New(h), "clear", []string{"getter", "viewer"}, 3)

	record := h.lastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "clear", record["trigger"])
	assert.Equal(t, []any{"getter", "viewer"}, record["kinds"])
	assert.Equal(t, float64(3), record["expired"])
}

func TestNilLoggerHelpers(t *testing.T) {
	assert.NotPanics(t, func() {
		LogSet(nil, "k", "int", 1)
		LogRemove(nil, "k", 1)
		LogClear(nil, 0, 1)
		LogInvalidKey(nil, "set")
		LogSubscriberError(nil, "1", "set", errors.New("x"))
		LogSolveStart(nil)
		LogSolveComplete(nil, 0)
		LogSolveError(nil, errors.New("x"), 0)
		LogExpire(nil, "set", nil, 0)
	})
}

func TestTimedOperation(t *testing.T) {
	done := TimedOperation()
	assert.GreaterOrEqual(t, done(), float64(0))
}
