package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/ward-alert-service/internal/adapters/http"
	"github.com/jsamuelsen11/ward-alert-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/ward-alert-service/internal/domain"
	"github.com/jsamuelsen11/ward-alert-service/internal/domain/ward"
	"github.com/jsamuelsen11/ward-alert-service/mocks"
)

type routerMocks struct {
	broadcast *mocks.MockBroadcastService
	directory *mocks.MockDirectoryService
	health    *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, readTimeout time.Duration) (http.Handler, routerMocks) {
	t.Helper()
	m := routerMocks{
		broadcast: mocks.NewMockBroadcastService(t),
		directory: mocks.NewMockDirectoryService(t),
		health:    mocks.NewMockHealthRegistry(t),
	}
	router := adapthttp.NewRouter(adapthttp.Handlers{
		Broadcast: handlers.NewBroadcastHandler(m.broadcast),
		Directory: handlers.NewDirectoryHandler(m.directory),
		Health:    handlers.NewHealthHandler(m.health),
	}, readTimeout)
	return router, m
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, time.Second)

	want := []string{
		"GET /health/live",
		"GET /health/ready",
		"GET /api/v1/patients",
		"GET /api/v1/patients/{patientId}",
		"GET /api/v1/doctors",
		"GET /api/v1/doctors/{doctorId}",
		"POST /api/v1/patients/{patientId}/setup",
		"POST /api/v1/patients/{patientId}/critical",
	}

	mux, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(mux, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk() error = %v", err)
	}

	for _, route := range want {
		if !registered[route] {
			t.Errorf("route %s not registered", route)
		}
	}
	if len(registered) != len(want) {
		t.Errorf("registered %d routes, want %d: %v", len(registered), len(want), registered)
	}
}

func TestRouter_Broadcasts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		setup  func(m routerMocks)
		status int
	}{
		{
			name: "setup succeeds",
			path: "/api/v1/patients/0x0001/setup",
			setup: func(m routerMocks) {
				m.broadcast.EXPECT().Setup(mock.Anything, "0x0001").Return(nil)
			},
			status: http.StatusNoContent,
		},
		{
			name: "critical for unknown patient",
			path: "/api/v1/patients/0x0999/critical",
			setup: func(m routerMocks) {
				m.broadcast.EXPECT().Critical(mock.Anything, "0x0999").
					Return(fmt.Errorf("patient %q: %w", "0x0999", domain.ErrNotFound))
			},
			status: http.StatusNotFound,
		},
		{
			name: "critical dispatch failure",
			path: "/api/v1/patients/0x0001/critical",
			setup: func(m routerMocks) {
				m.broadcast.EXPECT().Critical(mock.Anything, "0x0001").
					Return(fmt.Errorf("agent: %w", domain.ErrDispatch))
			},
			status: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, m := newTestRouter(t, time.Second)
			tt.setup(m)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.path, http.NoBody))

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d; body = %s", rec.Code, tt.status, rec.Body.String())
			}
		})
	}
}

func TestRouter_BroadcastOutlivesReadTimeout(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t, 10*time.Millisecond)
	m.broadcast.EXPECT().Setup(mock.Anything, "0x0002").
		RunAndReturn(func(_ context.Context, _ string) error {
			time.Sleep(50 * time.Millisecond)
			return nil
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/patients/0x0002/setup", http.NoBody))

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestRouter_ReadsAreBounded(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t, 10*time.Millisecond)
	m.directory.EXPECT().Patient(mock.Anything, "0x0001").
		RunAndReturn(func(ctx context.Context, _ string) (ward.Patient, error) {
			<-ctx.Done()
			return ward.Patient{}, ctx.Err()
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/patients/0x0001", http.NoBody))

	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusGatewayTimeout)
	}
}

func TestRouter_GetDoctor(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t, time.Second)
	m.directory.EXPECT().Doctor(mock.Anything, "0x0003").
		Return(ward.Doctor{ID: "0x0003", Name: "Doctor 1"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/doctors/0x0003", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}
