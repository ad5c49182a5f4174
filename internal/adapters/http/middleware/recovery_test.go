package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/ward-alert-service/internal/adapters/http/middleware"
)

func TestRecovery_PassThrough(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rec := serve(middleware.Recovery(testLogger(&buf))(noContent), http.MethodGet, "/health/live", nil)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %s", buf.String())
	}
}

func TestRecovery_PanicBecomesProblem(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Recovery(testLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("directory exploded")
	}))

	rec := serve(h, http.MethodGet, "/api/v1/patients/0x0001", nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if strings.Contains(rec.Body.String(), "exploded") {
		t.Error("panic value leaked into response")
	}
	if !strings.Contains(buf.String(), "directory exploded") || !strings.Contains(buf.String(), "stack=") {
		t.Errorf("panic not logged with stack:\n%s", buf.String())
	}
}

func TestRecovery_PanicAfterHeaderKeepsStatus(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Recovery(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		panic("late")
	}))

	rec := serve(h, http.MethodGet, "/api/v1/doctors", nil)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Error("panic not logged")
	}
}
