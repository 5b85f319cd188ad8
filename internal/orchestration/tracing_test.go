package orchestration

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// recordingProvider hands out tracers whose spans remember their name and
// final status.
type recordingProvider struct {
	noop.TracerProvider

	mu    sync.Mutex
	spans []*recordingSpan
}

func (p *recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return recordingTracer{provider: p}
}

type recordingTracer struct {
	noop.Tracer
	provider *recordingProvider
}

func (t recordingTracer) Start(ctx context.Context, name string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
	s := &recordingSpan{name: name}
	t.provider.mu.Lock()
	t.provider.spans = append(t.provider.spans, s)
	t.provider.mu.Unlock()
	return ctx, s
}

type recordingSpan struct {
	noop.Span
	name   string
	status codes.Code
	ended  bool
}

func (s *recordingSpan) SetStatus(code codes.Code, _ string) { s.status = code }
func (s *recordingSpan) End(...trace.SpanEndOption)          { s.ended = true }

func TestDispatcher_Spans(t *testing.T) {
	t.Parallel()
	tp := &recordingProvider{}
	d := NewDispatcher(WithTracerProvider(tp))

	d.ExecuteLine(context.Background(), "find 12")
	d.ExecuteLine(context.Background(), "ratio 1")
	d.ExecuteLine(context.Background(), "nonsense")

	// Unparsable lines never reach Execute and produce no span.
	if assert.Len(t, tp.spans, 2) {
		assert.Equal(t, "fibtoolkit.find", tp.spans[0].name)
		assert.Equal(t, codes.Unset, tp.spans[0].status)
		assert.Equal(t, "fibtoolkit.ratio", tp.spans[1].name)
		assert.Equal(t, codes.Error, tp.spans[1].status)
	}
	for _, s := range tp.spans {
		assert.True(t, s.ended, "span %s should be ended", s.name)
	}
}
