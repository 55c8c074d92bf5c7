package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveLoadDuration(50 * time.Millisecond)
	pr.IncLoadOutcome(OutcomePage)
	pr.AddPagesScanned(4)
	pr.IncMetaParseFailure()
	pr.IncDumpWrite()
	// Basic scrape to ensure metrics encode without panic
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(mfs) == 0 {
		t.Fatalf("expected metrics, got none")
	}
}

func TestNoopRecorderIsSafe(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveLoadDuration(time.Second)
	r.IncLoadOutcome(OutcomeFailed)
	r.AddPagesScanned(1)
	r.IncMetaParseFailure()
	r.IncDumpWrite()
}
