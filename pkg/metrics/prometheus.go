// Package metrics provides Prometheus metrics for the gridiron
// tendency service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Pipeline metrics
	rowsAccepted  prometheus.Counter
	rowsDropped   *prometheus.CounterVec
	bucketPlays   *prometheus.CounterVec
	buildDuration prometheus.Histogram
	buildCount    prometheus.Counter
	buildErrors   prometheus.Counter
	buildLastUnix prometheus.Gauge

	// Artifact store metrics
	artifactSaves       prometheus.Counter
	artifactLoads       prometheus.Counter
	artifactSaveLatency prometheus.Histogram
	artifactLoadLatency prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec

	// Serving-state metrics
	artifactTeams prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "gridiron",
		subsystem:        "tendency",
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

	m.rowsAccepted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_accepted_total",
		Help:      "Total snapshot rows that passed normalization",
	})

	m.rowsDropped = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "rows_dropped_total",
			Help:      "Total snapshot rows dropped during normalization, by reason",
		},
		[]string{"reason"},
	)

	m.bucketPlays = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "bucket_plays_total",
			Help:      "Total plays tagged into a situational bucket",
		},
		[]string{"bucket"},
	)

	m.buildDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "build_duration_milliseconds",
		Help:      "Pipeline build duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.buildCount = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "builds_total",
		Help:      "Total successful pipeline builds",
	})

	m.buildErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "build_errors_total",
		Help:      "Total failed pipeline builds",
	})

	m.buildLastUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "build_last_unix",
		Help:      "Unix timestamp of the last successful build",
	})

	m.artifactSaves = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "artifact_saves_total",
		Help:      "Total artifacts persisted to the store",
	})

	m.artifactLoads = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "artifact_loads_total",
		Help:      "Total artifacts loaded from the store",
	})

	m.artifactSaveLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "artifact_save_latency_milliseconds",
		Help:      "Artifact save latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.artifactLoadLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "artifact_load_latency_milliseconds",
		Help:      "Artifact load latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by endpoint, method and status code",
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

	m.errorsByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total HTTP error responses by endpoint",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.artifactTeams = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "artifact_teams",
		Help:      "Teams present in the currently served artifact",
	})
}

// RecordRowAccepted increments the accepted-rows counter.
func RecordRowAccepted() {
	globalManager.rowsAccepted.Inc()
}

// RecordRowDropped increments the dropped-rows counter for reason.
func RecordRowDropped(reason string) {
	globalManager.rowsDropped.WithLabelValues(reason).Inc()
}

// RecordBucketPlay increments the situational bucket counter.
func RecordBucketPlay(bucket string) {
	globalManager.bucketPlays.WithLabelValues(bucket).Inc()
}

// RecordBuild records a successful pipeline build.
func RecordBuild(durationMs int64) {
	globalManager.buildDuration.Observe(float64(durationMs))
	globalManager.buildCount.Inc()
	globalManager.buildLastUnix.SetToCurrentTime()
}

// RecordBuildError increments the failed-builds counter.
func RecordBuildError() {
	globalManager.buildErrors.Inc()
}

// RecordArtifactSave records one artifact persisted to the store.
func RecordArtifactSave(latencyMs int64) {
	globalManager.artifactSaves.Inc()
	globalManager.artifactSaveLatency.Observe(float64(latencyMs))
}

// RecordArtifactLoad records one artifact loaded from the store.
func RecordArtifactLoad(latencyMs int64) {
	globalManager.artifactLoads.Inc()
	globalManager.artifactLoadLatency.Observe(float64(latencyMs))
}

// UpdateArtifactTeams sets the team count of the served artifact.
func UpdateArtifactTeams(count int) {
	globalManager.artifactTeams.Set(float64(count))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByEndpoint records an HTTP error response.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// GetRegistry returns the custom registry for the /metrics handler.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
