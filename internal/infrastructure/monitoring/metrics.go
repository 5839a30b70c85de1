package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestSize     *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Tool metrics
	ServiceCalls    *prometheus.CounterVec
	ServiceDuration *prometheus.HistogramVec

	// Math metrics
	Conversions *prometheus.CounterVec
	Evaluations *prometheus.CounterVec
	Solutions   *prometheus.CounterVec

	// Workspace metrics
	HistoryEntries prometheus.Gauge
	Favorites      prometheus.Gauge
	SavedFormulas  prometheus.Gauge

	// System metrics
	Uptime    prometheus.GaugeFunc
	startTime time.Time

	// Snapshot for JSON API - track current values
	snapshot MetricsSnapshot

	mu sync.RWMutex
}

// MetricsSnapshot holds current metric values for JSON API
type MetricsSnapshot struct {
	TotalRequests  int64   `json:"total_requests"`
	TotalErrors    int64   `json:"total_errors"`
	TotalDuration  float64 `json:"total_duration_seconds"`
	Conversions    int64   `json:"conversions"`
	Evaluations    int64   `json:"evaluations"`
	Solutions      int64   `json:"solutions"`
	HistoryEntries int64   `json:"history_entries"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
}

// NewMetrics creates a metrics collector on the default registry
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsWithRegistry creates a metrics collector on reg
func NewMetricsWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{startTime: time.Now()}

	// HTTP metrics
	m.RequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "math_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	m.RequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "math_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)
	m.RequestSize = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "math_http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: []float64{100, 1000, 10000, 100000, 1000000},
		},
		[]string{"method", "path"},
	)
	m.ResponseSize = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "math_http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: []float64{100, 1000, 10000, 100000, 1000000},
		},
		[]string{"method", "path"},
	)

	// Tool metrics
	m.ServiceCalls = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "math_tool_calls_total",
			Help: "Total number of provider tool executions",
		},
		[]string{"service", "method", "status"},
	)
	m.ServiceDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "math_tool_duration_seconds",
			Help:    "Provider tool execution duration in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"service", "method"},
	)

	// Math metrics
	m.Conversions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "math_conversions_total",
			Help: "Unit conversions by category and outcome",
		},
		[]string{"category", "status"},
	)
	m.Evaluations = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "math_evaluations_total",
			Help: "Expression evaluations by source and outcome",
		},
		[]string{"source", "status"},
	)
	m.Solutions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "math_solutions_total",
			Help: "Synthesized solutions by category and hint mode",
		},
		[]string{"category", "hint"},
	)

	// Workspace metrics
	m.HistoryEntries = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "math_history_entries",
			Help: "Solutions currently held in history",
		},
	)
	m.Favorites = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "math_favorite_formulas",
			Help: "Favorite formulas currently held",
		},
	)
	m.SavedFormulas = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "math_saved_formulas",
			Help: "User formulas currently saved",
		},
	)

	// System metrics
	m.Uptime = factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "math_uptime_seconds",
			Help: "Service uptime in seconds",
		},
		func() float64 { return time.Since(m.startTime).Seconds() },
	)

	return m
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, reqSize, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.RequestSize.WithLabelValues(method, path).Observe(float64(reqSize))
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))

	m.mu.Lock()
	m.snapshot.TotalRequests++
	m.snapshot.TotalDuration += duration.Seconds()
	if status != "" && (status[0] == '4' || status[0] == '5') {
		m.snapshot.TotalErrors++
	}
	m.mu.Unlock()
}

// RecordServiceCall records a provider tool execution
func (m *Metrics) RecordServiceCall(service, method, status string, duration time.Duration) {
	m.ServiceCalls.WithLabelValues(service, method, status).Inc()
	m.ServiceDuration.WithLabelValues(service, method).Observe(duration.Seconds())
}

// RecordConversion records a unit conversion outcome
func (m *Metrics) RecordConversion(category string, ok bool) {
	m.Conversions.WithLabelValues(category, statusLabel(ok)).Inc()
	m.mu.Lock()
	m.snapshot.Conversions++
	m.mu.Unlock()
}

// RecordEvaluation records an expression evaluation outcome
func (m *Metrics) RecordEvaluation(source string, ok bool) {
	m.Evaluations.WithLabelValues(source, statusLabel(ok)).Inc()
	m.mu.Lock()
	m.snapshot.Evaluations++
	m.mu.Unlock()
}

// RecordSolution records a synthesized solution
func (m *Metrics) RecordSolution(category string, hint bool) {
	label := "false"
	if hint {
		label = "true"
	}
	m.Solutions.WithLabelValues(category, label).Inc()
	m.mu.Lock()
	m.snapshot.Solutions++
	m.mu.Unlock()
}

// SetWorkspaceSize updates the workspace gauges
func (m *Metrics) SetWorkspaceSize(history, favorites, saved int) {
	m.HistoryEntries.Set(float64(history))
	m.Favorites.Set(float64(favorites))
	m.SavedFormulas.Set(float64(saved))
	m.mu.Lock()
	m.snapshot.HistoryEntries = int64(history)
	m.mu.Unlock()
}

// Snapshot returns the current counters for the JSON API
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := m.snapshot
	s.UptimeSeconds = time.Since(m.startTime).Seconds()
	return s
}

func statusLabel(ok bool) string {
	if ok {
		return "success"
	}
	return "error"
}
