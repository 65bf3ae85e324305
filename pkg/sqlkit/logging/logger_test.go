package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestStandardLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, WARN)

	l.Debug("hidden")
	l.Infof("also %s", "hidden")
	l.Warn("shown")
	l.Errorf("error %d", 7)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown")
	assert.Contains(t, out, "[ERROR] error 7")
}

func TestStandardLogger_ChangeLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, ERROR)

	l.Info("dropped")
	l.ChangeLevel(DEBUG)
	l.Debug("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

type recordingLogger struct {
	NopLogger
	calls [][]any
}

func (r *recordingLogger) Info(args ...any) {
	r.calls = append(r.calls, args)
}

func TestContextLogger_NoTrace(t *testing.T) {
	rec := &recordingLogger{}
	cl := NewContextLogger(context.Background(), rec)

	cl.Info("plain")

	require.Len(t, rec.calls, 1)
	assert.Equal(t, []any{"plain"}, rec.calls[0])
	assert.Empty(t, cl.TraceID())
}

func TestContextLogger_AppendsTraceID(t *testing.T) {
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x01},
		SpanID:  trace.SpanID{0x02},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	rec := &recordingLogger{}
	cl := NewContextLogger(ctx, rec)

	cl.Info("traced")

	require.Len(t, rec.calls, 1)
	require.Len(t, rec.calls[0], 2)
	assert.Equal(t, "traced", rec.calls[0][0])
	assert.Equal(t, map[string]any{"__trace_id__": sc.TraceID().String()}, rec.calls[0][1])
}
