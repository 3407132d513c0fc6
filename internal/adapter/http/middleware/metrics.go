package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Metrics middleware records HTTP metrics.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		// Wrap response writer to capture status code
		wrapped := &metricsRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		path := normalizePath(r.URL.Path)

		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

type metricsRecorder struct {
	http.ResponseWriter

	statusCode int
}

func (r *metricsRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

// collapsible resource prefixes under /api/v1, ordered by specificity.
var resourcePrefixes = []struct {
	prefix      string
	placeholder string
}{
	{"/api/v1/accounts/", "/api/v1/accounts/:code"},
	{"/api/v1/vouchers/", "/api/v1/vouchers/:number"},
	{"/api/v1/balance-sheets/", "/api/v1/balance-sheets/:period"},
	{"/api/v1/income-statements/", "/api/v1/income-statements/:period"},
	{"/api/v1/ledger/", "/api/v1/ledger/:period"},
	{"/api/v1/periods/", "/api/v1/periods/:code"},
}

// normalizePath normalizes URL paths to avoid high cardinality.
func normalizePath(path string) string {
	// Collapse resource identifiers to placeholders
	// /api/v1/vouchers/V2025010001 -> /api/v1/vouchers/:number
	for _, rp := range resourcePrefixes {
		if !strings.HasPrefix(path, rp.prefix) || len(path) == len(rp.prefix) {
			continue
		}

		rest := path[len(rp.prefix):]
		if idx := strings.IndexByte(rest, '/'); idx >= 0 {
			return rp.placeholder + rest[idx:]
		}

		return rp.placeholder
	}

	return path
}
