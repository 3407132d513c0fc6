package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected short unchanged, got %q", got)
	}

	if got := truncate("longerstring", 6); got != "lon..." {
		t.Fatalf("expected lon..., got %q", got)
	}
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestAPIGetPrintsResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/accounts/1001" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"1001","name":"Cash"}`))
	}))
	defer server.Close()

	baseURL = server.URL
	timeout = 5 * time.Second

	out := captureOutput(t, func() {
		if err := apiGet("/api/v1/accounts/1001"); err != nil {
			t.Fatalf("apiGet failed: %v", err)
		}
	})

	if !strings.Contains(out, `"code": "1001"`) {
		t.Fatalf("expected pretty-printed account, got %q", out)
	}
}

func TestAPIPostReportsErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"invalid status transition"}`))
	}))
	defer server.Close()

	baseURL = server.URL
	timeout = 5 * time.Second

	err := apiPost("/api/v1/vouchers/V2025010001/submit", nil)
	if err == nil {
		t.Fatalf("expected error for conflict response")
	}
	if !strings.Contains(err.Error(), "409") {
		t.Fatalf("expected status code in error, got %v", err)
	}
}

func TestVoucherAuditRequiresAuditor(t *testing.T) {
	cmd := voucherCmd()
	cmd.SetArgs([]string{"audit", "V2025010001"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error when --by flag is missing")
	}
}
