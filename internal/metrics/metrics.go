// Package metrics exposes a Prometheus registry for console operational
// metrics: the HTTP serving surface and the calls made against the upstream
// document API.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ConsoleMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	backendCallTotal    *prometheus.CounterVec
	backendCallDuration *prometheus.HistogramVec
	breakerStateChanges *prometheus.CounterVec

	documentActionsTotal *prometheus.CounterVec
	staleScopeTotal      prometheus.Counter
	uploadsRejectedTotal *prometheus.CounterVec
}

func NewConsoleMetrics(service string) *ConsoleMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "console",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "console",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "console",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	backendCallTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "console",
			Subsystem: "backend",
			Name:      "calls_total",
			Help:      "Total calls against the document API by outcome.",
		},
		[]string{"service", "operation", "status"},
	)
	backendCallDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "console",
			Subsystem: "backend",
			Name:      "call_duration_seconds",
			Help:      "Document API call duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "operation"},
	)
	breakerStateChanges := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "console",
			Subsystem: "backend",
			Name:      "breaker_transitions_total",
			Help:      "Circuit breaker state transitions.",
		},
		[]string{"service", "from", "to"},
	)
	documentActionsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "console",
			Subsystem: "workflow",
			Name:      "document_actions_total",
			Help:      "Total document workflow actions by action and outcome.",
		},
		[]string{"service", "action", "status"},
	)
	staleScopeTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "console",
			Subsystem: "workflow",
			Name:      "stale_scope_discards_total",
			Help:      "Inventory responses discarded because the project scope changed mid-flight.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	uploadsRejectedTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "console",
			Subsystem: "workflow",
			Name:      "uploads_rejected_total",
			Help:      "Uploads rejected before any backend call, by reason.",
		},
		[]string{"service", "reason"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		backendCallTotal,
		backendCallDuration,
		breakerStateChanges,
		documentActionsTotal,
		staleScopeTotal,
		uploadsRejectedTotal,
	)

	return &ConsoleMetrics{
		registry:             registry,
		requestTotal:         requestTotal,
		requestDuration:      requestDuration,
		requestInFlight:      requestInFlight,
		backendCallTotal:     backendCallTotal,
		backendCallDuration:  backendCallDuration,
		breakerStateChanges:  breakerStateChanges,
		documentActionsTotal: documentActionsTotal,
		staleScopeTotal:      staleScopeTotal,
		uploadsRejectedTotal: uploadsRejectedTotal,
	}
}

func (m *ConsoleMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latencies per normalized route
func (m *ConsoleMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// normalizePath collapses per-document routes so label cardinality stays
// bounded
func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/v1/documents/"):
		return "/api/v1/documents/{id}"
	case strings.HasPrefix(path, "/api/v1/ingest/document/"):
		return "/api/v1/ingest/document/{id}"
	default:
		return path
	}
}

func (m *ConsoleMetrics) RecordBackendCall(service, operation string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.backendCallTotal.WithLabelValues(service, operation, status).Inc()
	m.backendCallDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

func (m *ConsoleMetrics) RecordBreakerTransition(service, from, to string) {
	m.breakerStateChanges.WithLabelValues(service, from, to).Inc()
}

func (m *ConsoleMetrics) RecordDocumentAction(service, action string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.documentActionsTotal.WithLabelValues(service, action, status).Inc()
}

func (m *ConsoleMetrics) RecordStaleScopeDiscard() {
	m.staleScopeTotal.Inc()
}

func (m *ConsoleMetrics) RecordUploadRejected(service, reason string) {
	m.uploadsRejectedTotal.WithLabelValues(service, reason).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}
