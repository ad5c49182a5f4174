package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/ward-alert-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/ward-alert-service/internal/platform/logging"
)

func TestLogging_StartAndCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.RequestID()(middleware.CorrelationID()(middleware.Logging(testLogger(&buf))(noContent)))

	header := http.Header{}
	header.Set("X-Request-ID", "req-log")
	header.Set("X-Correlation-ID", "corr-log")
	serve(h, http.MethodPost, "/api/v1/patients/0x0001/critical", header)

	out := buf.String()
	for _, want := range []string{
		"request started",
		"request completed",
		"method=POST",
		"path=/api/v1/patients/0x0001/critical",
		"status=204",
		"request_id=req-log",
		"correlation_id=corr-log",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogging_RedactsHeadersAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Logging(testLogger(&buf))(noContent)

	header := http.Header{}
	header.Set("Authorization", "Bearer s3cret")
	header.Set("Accept", "application/json")
	serve(h, http.MethodGet, "/api/v1/doctors", header)

	out := buf.String()
	if strings.Contains(out, "s3cret") {
		t.Errorf("authorization value leaked:\n%s", out)
	}
	if !strings.Contains(out, "Accept=application/json") {
		t.Errorf("non-sensitive header missing:\n%s", out)
	}
}

func TestLogging_StoresLoggerInContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Info("from handler", slog.String("patient_id", "0x0002"))
		w.WriteHeader(http.StatusNoContent)
	}))

	serve(h, http.MethodPost, "/api/v1/patients/0x0002/setup", nil)

	if !strings.Contains(buf.String(), "from handler") {
		t.Errorf("handler log missing:\n%s", buf.String())
	}
}
