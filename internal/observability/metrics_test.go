package observability

import (
	"testing"
	"time"
)

func TestMetricsCounters(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.RecordRequest("/api/listings", "GET", 200, 3*time.Millisecond)
	m.RecordRequest("/api/listings", "GET", 200, 5*time.Millisecond)
	m.RecordRequest("/api/health", "GET", 200, time.Millisecond)
	m.RecordError("/api/listings", "PUT", "FORBIDDEN")

	if got := m.RequestTotal(); got != 3 {
		t.Fatalf("RequestTotal: got %d want 3", got)
	}
	if got := m.RequestCount("/api/listings", "GET", 200); got != 2 {
		t.Fatalf("RequestCount: got %d want 2", got)
	}
	if got := m.errorCount["/api/listings|PUT|FORBIDDEN"]; got != 1 {
		t.Fatalf("error counter: got %d want 1", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.RecordRequest("/x", "GET", 200, 0)
	m.RecordError("/x", "GET", "INTERNAL_ERROR")
	if m.RequestTotal() != 0 {
		t.Fatalf("nil metrics should report zero")
	}
}
