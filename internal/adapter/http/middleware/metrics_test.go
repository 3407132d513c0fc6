package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddlewareRecordsRequest(t *testing.T) {
	testCases := []struct {
		name       string
		method     string
		path       string
		statusCode int
	}{
		{
			name:       "normalizes voucher path",
			method:     http.MethodGet,
			path:       "/api/v1/vouchers/V2025010001",
			statusCode: http.StatusOK,
		},
		{
			name:       "keeps non-matching path as-is",
			method:     http.MethodGet,
			path:       "/health",
			statusCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			httpRequestsTotal.Reset()
			httpRequestDuration.Reset()
			httpRequestsInFlight.Set(0)

			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(tc.statusCode)
			})

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rr := httptest.NewRecorder()

			Metrics(next).ServeHTTP(rr, req)

			if !handlerCalled {
				t.Fatalf("next handler was not invoked")
			}

			if got := testutil.ToFloat64(httpRequestsInFlight); got != 0 {
				t.Fatalf("expected in-flight gauge to return to 0, got %v", got)
			}

			normalized := normalizePath(tc.path)
			counter := httpRequestsTotal.WithLabelValues(tc.method, normalized, strconv.Itoa(tc.statusCode))
			if got := testutil.ToFloat64(counter); got != 1 {
				t.Fatalf("expected counter to be 1, got %v", got)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "account path without suffix",
			input:    "/api/v1/accounts/1001",
			expected: "/api/v1/accounts/:code",
		},
		{
			name:     "account path with suffix",
			input:    "/api/v1/accounts/1001/deactivate",
			expected: "/api/v1/accounts/:code/deactivate",
		},
		{
			name:     "voucher path",
			input:    "/api/v1/vouchers/V2025010001",
			expected: "/api/v1/vouchers/:number",
		},
		{
			name:     "voucher transition path",
			input:    "/api/v1/vouchers/V2025010001/submit",
			expected: "/api/v1/vouchers/:number/submit",
		},
		{
			name:     "balance sheet path",
			input:    "/api/v1/balance-sheets/202501",
			expected: "/api/v1/balance-sheets/:period",
		},
		{
			name:     "ledger row path",
			input:    "/api/v1/ledger/202501/accounts/1001",
			expected: "/api/v1/ledger/:period/accounts/1001",
		},
		{
			name:     "collection path is untouched",
			input:    "/api/v1/vouchers/",
			expected: "/api/v1/vouchers/",
		},
		{
			name:     "non-matching path",
			input:    "/health",
			expected: "/health",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizePath(tc.input); got != tc.expected {
				t.Fatalf("normalizePath(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}
