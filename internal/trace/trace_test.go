package trace

import (
	"strings"
	"testing"
	"time"
)

func TestTraceSpans(t *testing.T) {
	tr := New()

	if !strings.HasPrefix(tr.RequestID, "req_") {
		t.Fatalf("unexpected request id: %s", tr.RequestID)
	}

	tr.StartSpan("stage")
	time.Sleep(5 * time.Millisecond)
	d := tr.EndSpan("stage")
	if d <= 0 {
		t.Fatalf("expected positive duration, got %s", d)
	}

	recorded, ok := tr.Span("stage")
	if !ok || recorded != d {
		t.Fatalf("recorded span mismatch: %s vs %s", recorded, d)
	}
}

func TestTraceEndSpanWithoutStart(t *testing.T) {
	tr := New()

	d := tr.EndSpan("never_started")
	if d != Sentinel {
		t.Fatalf("expected sentinel duration, got %s", d)
	}

	recorded, ok := tr.Span("never_started")
	if !ok || recorded != Sentinel {
		t.Fatalf("expected sentinel recorded, got %s (ok=%v)", recorded, ok)
	}
}

func TestTraceElapsedMs(t *testing.T) {
	tr := New()
	time.Sleep(2 * time.Millisecond)
	if tr.ElapsedMs() < 0 {
		t.Fatalf("elapsed must not be negative")
	}
}

func TestTraceRequestIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tr := New()
		if seen[tr.RequestID] {
			t.Fatalf("duplicate request id: %s", tr.RequestID)
		}
		seen[tr.RequestID] = true
	}
}
