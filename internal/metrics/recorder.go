package metrics

import "time"

// OutcomeLabel enumerates load outcome categories for counters.
type OutcomeLabel string

const (
	OutcomePage   OutcomeLabel = "page"
	OutcomeRouter OutcomeLabel = "router"
	OutcomeFailed OutcomeLabel = "failed"
)

// Recorder defines observability hooks for loader invocations. Implementations
// may forward to Prometheus, OpenTelemetry, etc. All methods must be safe on
// the NoopRecorder (allowing optional injection).
type Recorder interface {
	ObserveLoadDuration(d time.Duration)
	IncLoadOutcome(outcome OutcomeLabel)
	AddPagesScanned(n int)
	IncMetaParseFailure()
	IncDumpWrite()
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveLoadDuration(time.Duration) {}
func (NoopRecorder) IncLoadOutcome(OutcomeLabel)       {}
func (NoopRecorder) AddPagesScanned(int)               {}
func (NoopRecorder) IncMetaParseFailure()              {}
func (NoopRecorder) IncDumpWrite()                     {}
