// Package metrics provides Prometheus metrics for the archive.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Ingest outcomes.
const (
	OutcomeIndexed           = "indexed"
	OutcomeDuplicate         = "duplicate"
	OutcomeDecodeFailed      = "decode_failed"
	OutcomeMissingIdentifier = "missing_identifier"
	OutcomeStoreFailed       = "store_failed"
)

// Metrics holds the archive's Prometheus collectors. Each instance owns its registry,
// so several can coexist in one process. All methods are safe on a nil *Metrics.
type Metrics struct {
	registry *prometheus.Registry

	IngestFilesTotal    *prometheus.CounterVec
	QueriesTotal        *prometheus.CounterVec
	QueryDuration       *prometheus.HistogramVec
	QueryResultsTotal   *prometheus.CounterVec
	FramesTotal         *prometheus.CounterVec
	FrameBytesTotal     prometheus.Counter
	IndexedInstances    prometheus.Gauge
	ServerStartTime     time.Time
	ServerUptimeSeconds prometheus.GaugeFunc
}

// New creates and registers all metrics on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	m := &Metrics{
		registry:        reg,
		ServerStartTime: time.Now(),
	}

	m.IngestFilesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kura_ingest_files_total",
			Help: "Files processed by the ingest pipeline, by outcome",
		},
		[]string{"outcome"},
	)

	m.QueriesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kura_queries_total",
			Help: "Total number of index queries",
		},
		[]string{"level", "status"},
	)

	m.QueryDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kura_query_duration_seconds",
			Help:    "Duration of index queries in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"level"},
	)

	m.QueryResultsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kura_query_results_total",
			Help: "Records returned by index queries after deduplication",
		},
		[]string{"level"},
	)

	m.FramesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kura_frames_total",
			Help: "Frame retrievals, by status",
		},
		[]string{"status"},
	)

	m.FrameBytesTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "kura_frame_bytes_total",
			Help: "Pixel data bytes served in frame responses",
		},
	)

	m.IndexedInstances = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "kura_indexed_instances",
			Help: "Number of instances in the index at the last status check",
		},
	)

	m.ServerUptimeSeconds = factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "kura_uptime_seconds",
			Help: "Seconds since the metrics were created",
		},
		func() float64 { return time.Since(m.ServerStartTime).Seconds() },
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordIngest counts one file processed with the given outcome.
func (m *Metrics) RecordIngest(outcome string) {
	if m == nil {
		return
	}
	m.IngestFilesTotal.WithLabelValues(outcome).Inc()
}

// RecordQuery records one query at level.
func (m *Metrics) RecordQuery(level string, results int, err error, d time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.QueriesTotal.WithLabelValues(level, status).Inc()
	m.QueryDuration.WithLabelValues(level).Observe(d.Seconds())
	if err == nil {
		m.QueryResultsTotal.WithLabelValues(level).Add(float64(results))
	}
}

// RecordFrame records one frame retrieval.
func (m *Metrics) RecordFrame(status string, bytes int) {
	if m == nil {
		return
	}
	m.FramesTotal.WithLabelValues(status).Inc()
	if bytes > 0 {
		m.FrameBytesTotal.Add(float64(bytes))
	}
}

// SetIndexedInstances updates the instance gauge.
func (m *Metrics) SetIndexedInstances(n int64) {
	if m == nil {
		return
	}
	m.IndexedInstances.Set(float64(n))
}
