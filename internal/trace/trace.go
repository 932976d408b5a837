// Package trace provides per-request identifiers and span timing.
package trace

import (
	"time"

	"github.com/google/uuid"
)

// Sentinel is recorded when EndSpan is called for a span that was never
// started, so error paths can always close their span without checking.
const Sentinel = time.Duration(-1)

// Trace correlates one request's log entries and stage timings. A Trace
// is owned by a single request and is not safe for concurrent use.
type Trace struct {
	RequestID string
	StartedAt time.Time

	starts map[string]time.Time
	spans  map[string]time.Duration
}

// New creates a trace for a single inbound request.
func New() *Trace {
	return &Trace{
		RequestID: "req_" + uuid.New().String()[:8],
		StartedAt: time.Now(),
		starts:    make(map[string]time.Time),
		spans:     make(map[string]time.Duration),
	}
}

// StartSpan records the start time for a named span. Starting a span
// that is already open resets it.
func (t *Trace) StartSpan(name string) {
	t.starts[name] = time.Now()
}

// EndSpan records and returns the elapsed duration for a named span.
func (t *Trace) EndSpan(name string) time.Duration {
	start, ok := t.starts[name]
	if !ok {
		t.spans[name] = Sentinel
		return Sentinel
	}
	delete(t.starts, name)
	d := time.Since(start)
	t.spans[name] = d
	return d
}

// Span returns the recorded duration for name, if the span has ended.
func (t *Trace) Span(name string) (time.Duration, bool) {
	d, ok := t.spans[name]
	return d, ok
}

// ElapsedMs returns wall-clock milliseconds since the trace was created.
func (t *Trace) ElapsedMs() int64 {
	return time.Since(t.StartedAt).Milliseconds()
}
