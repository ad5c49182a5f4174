// Package http is the inbound HTTP adapter: routing and server lifecycle.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/ward-alert-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/ward-alert-service/internal/adapters/http/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Broadcast *handlers.BroadcastHandler
	Directory *handlers.DirectoryHandler
	Health    *handlers.HealthHandler
}

// NewRouter registers every route on a chi mux. middlewares apply to all
// routes in the order given. readTimeout, when positive, bounds the health
// and directory reads; broadcast routes are never cut short.
func NewRouter(h Handlers, readTimeout time.Duration, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Group(func(r chi.Router) {
		if readTimeout > 0 {
			r.Use(middleware.Timeout(readTimeout))
		}

		r.Get("/health/live", h.Health.Liveness)
		r.Get("/health/ready", h.Health.Readiness)

		r.Get("/api/v1/patients", h.Directory.ListPatients)
		r.Get("/api/v1/patients/{"+handlers.ParamPatientID+"}", h.Directory.GetPatient)
		r.Get("/api/v1/doctors", h.Directory.ListDoctors)
		r.Get("/api/v1/doctors/{"+handlers.ParamDoctorID+"}", h.Directory.GetDoctor)
	})

	r.Post("/api/v1/patients/{"+handlers.ParamPatientID+"}/setup", h.Broadcast.Setup)
	r.Post("/api/v1/patients/{"+handlers.ParamPatientID+"}/critical", h.Broadcast.Critical)

	return r
}
