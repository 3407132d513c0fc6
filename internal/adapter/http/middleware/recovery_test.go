package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRecoveryReturnsInternalServerError(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("voucher handler blew up")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vouchers/", nil)
	rr := httptest.NewRecorder()

	Recovery(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}
	if !strings.Contains(rr.Body.String(), "internal server error") {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}

func TestRecoveryRethrowsAbortHandler(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/", nil)
	rr := httptest.NewRecorder()

	defer func() {
		if recover() != http.ErrAbortHandler {
			t.Fatalf("expected ErrAbortHandler to propagate")
		}
	}()

	Recovery(next).ServeHTTP(rr, req)
	t.Fatalf("expected panic to propagate")
}
