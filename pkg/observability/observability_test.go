package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracePhaseExportsSpan(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultTracingConfig()
	cfg.ServiceName = "framebench-test"
	tracing, err := InitTracing(cfg, &buf)
	require.NoError(t, err)

	d, err := TracePhase(context.Background(), "copy_insert", 100, func(ctx context.Context) error {
		time.Sleep(time.Millisecond)
		return nil
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, d, time.Millisecond)

	boom := errors.New("boom")
	_, err = TracePhase(context.Background(), "table_copy", 5, func(ctx context.Context) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)

	require.NoError(t, tracing.Shutdown(context.Background()))

	out := buf.String()
	assert.True(t, strings.Contains(out, "framebench.copy_insert"), out)
	assert.True(t, strings.Contains(out, "framebench.table_copy"), out)
	assert.True(t, strings.Contains(out, "framebench-test"), out)
	assert.True(t, strings.Contains(out, "boom"), out)
}

func TestTracerWithoutInit(t *testing.T) {
	assert.NotNil(t, Tracer())

	_, span := NewSpan(context.Background(), "noop")
	span.SetAttribute("rows", 3)
	span.SetAttribute("seed", uint64(9))
	span.SetAttribute("other", struct{}{})
	span.SetError(nil)
	assert.GreaterOrEqual(t, span.End(), time.Duration(0))
}

func TestSamplingRateZero(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultTracingConfig()
	cfg.SamplingRate = 0
	tracing, err := InitTracing(cfg, &buf)
	require.NoError(t, err)

	_, span := NewSpan(context.Background(), "dropped")
	span.End()
	require.NoError(t, tracing.Shutdown(context.Background()))
	assert.Empty(t, buf.String())
}
