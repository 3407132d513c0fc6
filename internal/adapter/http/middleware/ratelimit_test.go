package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := rl.Limit(next)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/vouchers/", nil)
		req.RemoteAddr = "10.0.0.1:51000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rr.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vouchers/", nil)
	req.RemoteAddr = "10.0.0.1:51000"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", rr.Code)
	}

	// A different client keeps its own bucket.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/vouchers/", nil)
	req.RemoteAddr = "10.0.0.2:51000"
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for separate client, got %d", rr.Code)
	}
}

func TestClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		expected   string
	}{
		{
			name:       "port stripped from remote addr",
			remoteAddr: "192.168.1.5:44321",
			expected:   "192.168.1.5",
		},
		{
			name:       "same host different ports share one bucket key",
			remoteAddr: "192.168.1.5:44322",
			expected:   "192.168.1.5",
		},
		{
			name:       "first forwarded hop wins",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"},
			expected:   "203.0.113.7",
		},
		{
			name:       "real ip header",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Real-IP": "203.0.113.9"},
			expected:   "203.0.113.9",
		},
		{
			name:       "remote addr without port passes through",
			remoteAddr: "192.168.1.5",
			expected:   "192.168.1.5",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			if got := clientIP(req); got != tc.expected {
				t.Fatalf("clientIP() = %q, expected %q", got, tc.expected)
			}
		})
	}
}
