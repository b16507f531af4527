package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	documentsProcessedTotal *prometheus.CounterVec
	extractedTasks          *prometheus.HistogramVec
	scoringRequestsTotal    *prometheus.CounterVec
	scoringDuration         *prometheus.HistogramVec
	exportsTotal            *prometheus.CounterVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pm",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pm",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pm",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	documentsProcessedTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pm",
			Subsystem: "extraction",
			Name:      "documents_total",
			Help:      "Total processed document uploads by outcome.",
		},
		[]string{"service", "file_type", "status"},
	)
	extractedTasks := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pm",
			Subsystem: "extraction",
			Name:      "tasks_per_document",
			Help:      "Distribution of task candidates extracted per document.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21, 34},
		},
		[]string{"service"},
	)
	scoringRequestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pm",
			Subsystem: "scoring",
			Name:      "requests_total",
			Help:      "Total prioritization requests by result source.",
		},
		[]string{"service", "source"},
	)
	scoringDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pm",
			Subsystem: "scoring",
			Name:      "duration_seconds",
			Help:      "Prioritization duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service"},
	)
	exportsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pm",
			Subsystem: "export",
			Name:      "workbooks_total",
			Help:      "Total exported XLSX workbooks.",
		},
		[]string{"service"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		documentsProcessedTotal,
		extractedTasks,
		scoringRequestsTotal,
		scoringDuration,
		exportsTotal,
	)

	return &HTTPServerMetrics{
		registry:                registry,
		requestTotal:            requestTotal,
		requestDuration:         requestDuration,
		requestInFlight:         requestInFlight,
		documentsProcessedTotal: documentsProcessedTotal,
		extractedTasks:          extractedTasks,
		scoringRequestsTotal:    scoringRequestsTotal,
		scoringDuration:         scoringDuration,
		exportsTotal:            exportsTotal,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
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

func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/documents/"):
		return "/v1/documents/{document_id}"
	case strings.HasPrefix(path, "/v1/tasks/"):
		return "/v1/tasks/{task_id}"
	case strings.HasPrefix(path, "/v1/projects/"):
		return "/v1/projects/{project_id}"
	default:
		return path
	}
}

func (m *HTTPServerMetrics) RecordDocumentProcessed(service, fileType, status string, extractedTasks int) {
	m.documentsProcessedTotal.WithLabelValues(service, fileType, status).Inc()
	if status == "processed" {
		m.extractedTasks.WithLabelValues(service).Observe(float64(extractedTasks))
	}
}

func (m *HTTPServerMetrics) RecordScoring(service, source string, duration time.Duration) {
	if source == "" {
		source = "unknown"
	}
	m.scoringRequestsTotal.WithLabelValues(service, source).Inc()
	m.scoringDuration.WithLabelValues(service).Observe(duration.Seconds())
}

func (m *HTTPServerMetrics) RecordExport(service string) {
	m.exportsTotal.WithLabelValues(service).Inc()
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

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return hijacker.Hijack()
}

func (w *statusRecorder) Push(target string, opts *http.PushOptions) error {
	pusher, ok := w.ResponseWriter.(http.Pusher)
	if !ok {
		return http.ErrNotSupported
	}
	return pusher.Push(target, opts)
}
