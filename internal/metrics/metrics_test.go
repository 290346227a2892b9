package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(relayRequests.WithLabelValues("test-model", OutcomeSuccess))
	RecordRequest("test-model", OutcomeSuccess)
	after := testutil.ToFloat64(relayRequests.WithLabelValues("test-model", OutcomeSuccess))
	if after != before+1 {
		t.Fatalf("expected counter to increase by 1, got %v -> %v", before, after)
	}
}

func TestRegisterAndObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	Register(reg)
	ObserveInvoke("test-model", 150*time.Millisecond)

	if n := testutil.CollectAndCount(invokeDuration); n == 0 {
		t.Fatalf("expected histogram series")
	}
}
