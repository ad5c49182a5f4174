package middleware_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/ward-alert-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/ward-alert-service/internal/platform/telemetry"
)

// Not parallel: these replace the global TracerProvider.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })
	return exporter
}

func TestOpenTelemetry_SpanUsesRoutePattern(t *testing.T) {
	exporter := setupTracer(t)

	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(nil))
	r.Post("/api/v1/patients/{patientId}/critical", noContent)

	serve(r, http.MethodPost, "/api/v1/patients/0x0001/critical", nil)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("len(spans) = %d, want 1", len(spans))
	}
	if want := "HTTP POST /api/v1/patients/{patientId}/critical"; spans[0].Name != want {
		t.Errorf("span name = %q, want %q", spans[0].Name, want)
	}

	attrs := map[string]any{}
	for _, a := range spans[0].Attributes {
		attrs[string(a.Key)] = a.Value.AsInterface()
	}
	if attrs["http.status_code"] != int64(http.StatusNoContent) {
		t.Errorf("http.status_code = %v", attrs["http.status_code"])
	}
	if attrs["http.target"] != "/api/v1/patients/0x0001/critical" {
		t.Errorf("http.target = %v", attrs["http.target"])
	}
}

func TestOpenTelemetry_ErrorStatusOn5xx(t *testing.T) {
	exporter := setupTracer(t)

	h := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	serve(h, http.MethodGet, "/health/ready", nil)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("len(spans) = %d, want 1", len(spans))
	}
	if spans[0].Status.Code != codes.Error {
		t.Errorf("status code = %v, want Error", spans[0].Status.Code)
	}
	if spans[0].Name != "HTTP GET unmatched" {
		t.Errorf("span name = %q", spans[0].Name)
	}
}

func TestOpenTelemetry_ContinuesIncomingTrace(t *testing.T) {
	exporter := setupTracer(t)

	h := middleware.OpenTelemetry(nil)(noContent)
	header := http.Header{}
	header.Set("Traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	serve(h, http.MethodGet, "/api/v1/doctors", header)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("len(spans) = %d, want 1", len(spans))
	}
	if got := spans[0].SpanContext.TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace id = %s", got)
	}
}

func TestOpenTelemetry_RecordsRequestMetrics(t *testing.T) {
	setupTracer(t)

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(t.Context()) })

	metrics, err := telemetry.NewMetrics(mp, "ward-alert-service")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(metrics))
	r.Get("/api/v1/patients/{patientId}", noContent)
	serve(r, http.MethodGet, "/api/v1/patients/0x0002", nil)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(t.Context(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.request.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("unexpected data type %T", m.Data)
			}
			for _, dp := range sum.DataPoints {
				route, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute)
				if route.AsString() != "/api/v1/patients/{patientId}" {
					t.Errorf("route attribute = %q", route.AsString())
				}
				total += dp.Value
			}
		}
	}
	if total != 1 {
		t.Errorf("http.server.request.total = %d, want 1", total)
	}
}
