// internal/monitoring/metrics.go
package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects Prometheus metrics for the importer.
type Metrics struct {
	importsTotal   *prometheus.CounterVec
	importDuration prometheus.Histogram
	fetchFailures  *prometheus.CounterVec
	extractorHits  *prometheus.CounterVec
	issuesPerDraft prometheus.Histogram
	recordsWritten *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates and registers the importer metric set on a dedicated
// registry, so repeated construction in tests does not collide.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "compintake"
	}
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		importsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "imports_total",
			Help:      "Import operations by outcome.",
		}, []string{"outcome"}),
		importDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "import_duration_seconds",
			Help:      "End-to-end duration of one import, fetch included.",
			Buckets:   prometheus.DefBuckets,
		}),
		fetchFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_failures_total",
			Help:      "Hard fetch failures by class (transport, status, url).",
		}, []string{"class"}),
		extractorHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractor_hits_total",
			Help:      "Successful per-field extractions.",
		}, []string{"field"}),
		issuesPerDraft: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "issues_per_import",
			Help:      "Number of reviewer caveats attached to each draft.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
		}),
		recordsWritten: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_written_total",
			Help:      "Reviewed records persisted, by output format.",
		}, []string{"format"}),
	}
}

// Handler serves the metrics registry over HTTP.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordImport registers one completed import attempt.
func (m *Metrics) RecordImport(outcome string, duration time.Duration, issueCount int) {
	m.importsTotal.WithLabelValues(outcome).Inc()
	m.importDuration.Observe(duration.Seconds())
	if issueCount > 0 {
		m.issuesPerDraft.Observe(float64(issueCount))
	}
}

// RecordFetchFailure registers a hard fetch failure.
func (m *Metrics) RecordFetchFailure(class string) {
	m.fetchFailures.WithLabelValues(class).Inc()
}

// RecordExtractorHit registers one field successfully extracted.
func (m *Metrics) RecordExtractorHit(field string) {
	m.extractorHits.WithLabelValues(field).Inc()
}

// RecordWritten registers persisted records.
func (m *Metrics) RecordWritten(format string, count int) {
	m.recordsWritten.WithLabelValues(format).Add(float64(count))
}
