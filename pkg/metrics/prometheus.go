// Package metrics provides Prometheus metrics for the conference planner.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the planner.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Scoring metrics
	sessionsScored     prometheus.Counter
	scoringRunDuration prometheus.Histogram
	scoringRuns        prometheus.Counter

	// Planning quality metrics
	conflictsDetected prometheus.Counter
	malformedTimes    prometheus.Counter
	correctedTimes    prometheus.Counter

	// Dataset and profile state
	datasetSize  prometheus.Gauge
	profileCount prometheus.Gauge
	profileLoads prometheus.Counter

	// Pool metrics
	poolQueueSize   prometheus.Gauge
	poolWorkerCount prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "confplan",
		subsystem:        "planner",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.sessionsScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_scored_total",
		Help:      "Total number of sessions scored across all runs",
	})

	m.scoringRunDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_run_duration_milliseconds",
		Help:      "Duration of full scoring runs in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.scoringRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_runs_total",
		Help:      "Total number of scoring runs",
	})

	m.conflictsDetected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "conflicts_detected_total",
		Help:      "Total number of schedule conflicts detected",
	})

	m.malformedTimes = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "malformed_times_total",
		Help:      "Total number of session clock values that failed to parse",
	})

	m.correctedTimes = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "corrected_times_total",
		Help:      "Total number of session intervals repaired by the 12-hour heuristic",
	})

	m.datasetSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_sessions",
		Help:      "Number of sessions in the loaded dataset",
	})

	m.profileCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "profiles",
		Help:      "Number of known interest profiles (presets plus registered)",
	})

	m.profileLoads = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "profile_loads_total",
		Help:      "Total number of profile lookups and loads",
	})

	m.poolQueueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pool_queue_size",
		Help:      "Current size of the scoring job queue",
	})

	m.poolWorkerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pool_worker_count",
		Help:      "Number of scoring workers",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// Package-level helpers on the global manager.

// RecordSessionsScored adds n to the scored-session counter.
func RecordSessionsScored(n int) {
	globalManager.sessionsScored.Add(float64(n))
}

// RecordScoringRun records one completed scoring run and its duration.
func RecordScoringRun(durationMs float64) {
	globalManager.scoringRuns.Inc()
	globalManager.scoringRunDuration.Observe(durationMs)
}

// RecordConflictsDetected adds n to the conflict counter.
func RecordConflictsDetected(n int) {
	globalManager.conflictsDetected.Add(float64(n))
}

// RecordMalformedTime counts a clock value that failed to parse.
func RecordMalformedTime() {
	globalManager.malformedTimes.Inc()
}

// RecordCorrectedTime counts an interval repaired by the 12-hour heuristic.
func RecordCorrectedTime() {
	globalManager.correctedTimes.Inc()
}

// UpdateDatasetSize sets the loaded dataset size gauge.
func UpdateDatasetSize(n int) {
	globalManager.datasetSize.Set(float64(n))
}

// UpdateProfileCount sets the known-profile gauge.
func UpdateProfileCount(n int) {
	globalManager.profileCount.Set(float64(n))
}

// RecordProfileLoad counts a profile lookup or load.
func RecordProfileLoad() {
	globalManager.profileLoads.Inc()
}

// UpdatePoolQueueSize sets the scoring job queue gauge.
func UpdatePoolQueueSize(n int) {
	globalManager.poolQueueSize.Set(float64(n))
}

// UpdatePoolWorkerCount sets the scoring worker gauge.
func UpdatePoolWorkerCount(n int) {
	globalManager.poolWorkerCount.Set(float64(n))
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records one HTTP request's duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry exposes the custom registry for the /metrics handler.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
