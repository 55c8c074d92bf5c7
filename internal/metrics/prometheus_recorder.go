package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry     *prom.Registry
	loadDuration prom.Histogram
	loadOutcomes *prom.CounterVec
	pagesScanned prom.Counter
	metaFailures prom.Counter
	dumpWrites   prom.Counter
}

// NewPrometheusRecorder constructs and registers loader metrics.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{registry: reg}
	pr.loadDuration = prom.NewHistogram(prom.HistogramOpts{
		Namespace: "pagemill",
		Name:      "load_duration_seconds",
		Help:      "Duration of one loader invocation",
		Buckets:   prom.DefBuckets,
	})
	pr.loadOutcomes = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "pagemill",
		Name:      "load_outcomes_total",
		Help:      "Loader invocation outcomes",
	}, []string{"outcome"})
	pr.pagesScanned = prom.NewCounter(prom.CounterOpts{
		Namespace: "pagemill",
		Name:      "pages_scanned_total",
		Help:      "Page map nodes emitted across builds",
	})
	pr.metaFailures = prom.NewCounter(prom.CounterOpts{
		Namespace: "pagemill",
		Name:      "meta_parse_failures_total",
		Help:      "Malformed meta file parse failures",
	})
	pr.dumpWrites = prom.NewCounter(prom.CounterOpts{
		Namespace: "pagemill",
		Name:      "dump_writes_total",
		Help:      "Pages written to the content index",
	})
	reg.MustRegister(pr.loadDuration, pr.loadOutcomes, pr.pagesScanned, pr.metaFailures, pr.dumpWrites)
	return pr
}

// Handler exposes the registry for the watch daemon's metrics listener.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

func (p *PrometheusRecorder) ObserveLoadDuration(d time.Duration) {
	if p == nil || p.loadDuration == nil {
		return
	}
	p.loadDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncLoadOutcome(outcome OutcomeLabel) {
	if p == nil || p.loadOutcomes == nil {
		return
	}
	p.loadOutcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) AddPagesScanned(n int) {
	if p == nil || p.pagesScanned == nil {
		return
	}
	p.pagesScanned.Add(float64(n))
}

func (p *PrometheusRecorder) IncMetaParseFailure() {
	if p == nil || p.metaFailures == nil {
		return
	}
	p.metaFailures.Inc()
}

func (p *PrometheusRecorder) IncDumpWrite() {
	if p == nil || p.dumpWrites == nil {
		return
	}
	p.dumpWrites.Inc()
}
