// Package metrics exposes Prometheus collectors for the EPUB download
// service: HTTP traffic instrumentation plus domain counters for generator
// runs and the purchase-retry flow. All collectors live in a dedicated
// registry so tests and embedding code never collide with the default one.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Download outcome label values recorded by the EPUB service.
const (
	OutcomeOK           = "ok"
	OutcomeInvalid      = "invalid"
	OutcomeUnauthorized = "unauthorized"
	OutcomePayment      = "payment"
	OutcomeNotFound     = "notfound"
	OutcomeError        = "error"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "jncep_web",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jncep_web",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jncep_web",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 14), // 50ms to ~7m, downloads run long
		},
		[]string{"method", "path"},
	)

	downloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jncep_web",
			Subsystem: "epub",
			Name:      "downloads_total",
			Help:      "Total number of EPUB download requests processed.",
		},
		[]string{"outcome"},
	)

	downloadDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jncep_web",
			Subsystem: "epub",
			Name:      "download_duration_seconds",
			Help:      "Duration of EPUB download requests end to end.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 12), // 500ms to ~17m
		},
		[]string{"outcome"},
	)

	payloadBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "jncep_web",
			Subsystem: "epub",
			Name:      "payload_bytes",
			Help:      "Size of served EPUB or ZIP payloads in bytes.",
			Buckets:   prometheus.ExponentialBuckets(64*1024, 4, 8), // 64KiB to ~1GiB
		},
	)

	purchaseRetries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jncep_web",
			Subsystem: "epub",
			Name:      "purchase_retries_total",
			Help:      "Total number of purchase-retry attempts after a payment-required failure.",
		},
		[]string{"outcome"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		downloads,
		downloadDuration,
		payloadBytes,
		purchaseRetries,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler wraps the provided handler with HTTP metrics collection.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		duration := time.Since(start)
		path := canonicalPath(r.URL.Path)
		method := strings.ToUpper(r.Method)

		httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	})
}

// RecordDownload records the outcome and duration of one download request.
func RecordDownload(outcome string, duration time.Duration) {
	if duration <= 0 {
		duration = time.Millisecond
	}
	downloads.WithLabelValues(outcome).Inc()
	downloadDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordPayloadSize records the size of a served EPUB or ZIP payload.
func RecordPayloadSize(bytes int) {
	if bytes < 0 {
		return
	}
	payloadBytes.Observe(float64(bytes))
}

// RecordPurchaseRetry records one purchase-retry attempt and whether the
// subsequent generator run succeeded.
func RecordPurchaseRetry(success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	purchaseRetries.WithLabelValues(outcome).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// canonicalPath collapses request paths to their first segment so per-novel
// query strings never blow up label cardinality.
func canonicalPath(raw string) string {
	trimmed := strings.Trim(raw, "/")
	if trimmed == "" {
		return "/"
	}

	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		trimmed = trimmed[:i]
	}
	return "/" + trimmed
}
