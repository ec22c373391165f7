package telemetry

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// SummaryProcessor implements sdktrace.SpanProcessor and prints one line per
// finished span with its duration.
type SummaryProcessor struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSummaryProcessor returns a SummaryProcessor writing to w.
func NewSummaryProcessor(w io.Writer) *SummaryProcessor {
	return &SummaryProcessor{w: w}
}

// OnStart does nothing.
func (p *SummaryProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd prints the span summary.
func (p *SummaryProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}

	line := fmt.Sprintf("trace: %s took %s", s.Name(), s.EndTime().Sub(s.StartTime()).Round(time.Microsecond))
	if st := s.Status(); st.Code == codes.Error {
		line += " (failed: " + st.Description + ")"
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintln(p.w, line)
}

// ForceFlush does nothing.
func (p *SummaryProcessor) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (p *SummaryProcessor) Shutdown(_ context.Context) error {
	return nil
}
