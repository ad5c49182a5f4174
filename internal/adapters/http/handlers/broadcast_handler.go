// Package handlers implements the HTTP endpoints of the ward alert API.
package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/ward-alert-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/ward-alert-service/internal/ports"
)

// BroadcastHandler serves the setup and critical broadcast endpoints.
type BroadcastHandler struct {
	svc ports.BroadcastService
}

// NewBroadcastHandler creates a BroadcastHandler.
func NewBroadcastHandler(svc ports.BroadcastService) *BroadcastHandler {
	return &BroadcastHandler{svc: svc}
}

// Setup handles POST /api/v1/patients/{patientId}/setup.
func (h *BroadcastHandler) Setup(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.svc.Setup)
}

// Critical handles POST /api/v1/patients/{patientId}/critical.
func (h *BroadcastHandler) Critical(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.svc.Critical)
}

// serve answers 204 on success. Every failure, whatever its cause, becomes
// the same 404 problem without detail.
func (h *BroadcastHandler) serve(w http.ResponseWriter, r *http.Request, send func(context.Context, string) error) {
	if err := send(r.Context(), pathParam(r, ParamPatientID)); err != nil {
		dto.WriteBroadcastRejection(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
