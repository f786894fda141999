package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(KicksRecordedTotal)
	KicksRecordedTotal.Inc()
	if got := testutil.ToFloat64(KicksRecordedTotal); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}

	failures := AuthFailuresTotal.WithLabelValues(ReasonInvalidToken)
	before = testutil.ToFloat64(failures)
	failures.Inc()
	if got := testutil.ToFloat64(failures); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}
}
