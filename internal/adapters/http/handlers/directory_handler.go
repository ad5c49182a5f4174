package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/ward-alert-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/ward-alert-service/internal/ports"
)

// DirectoryHandler serves the read-only patient and doctor endpoints.
type DirectoryHandler struct {
	svc ports.DirectoryService
}

// NewDirectoryHandler creates a DirectoryHandler.
func NewDirectoryHandler(svc ports.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{svc: svc}
}

// ListPatients handles GET /api/v1/patients[?sector=S1].
func (h *DirectoryHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	q := dto.ParsePatientListQuery(r)
	if err := q.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	patients := q.Apply(h.svc.Patients(r.Context()))
	writeJSON(w, http.StatusOK, dto.ToPatientListResponse(patients))
}

// GetPatient handles GET /api/v1/patients/{patientId}.
func (h *DirectoryHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Patient(r.Context(), pathParam(r, ParamPatientID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToPatientResponse(p))
}

// ListDoctors handles GET /api/v1/doctors.
func (h *DirectoryHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToDoctorListResponse(h.svc.Doctors(r.Context())))
}

// GetDoctor handles GET /api/v1/doctors/{doctorId}.
func (h *DirectoryHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Doctor(r.Context(), pathParam(r, ParamDoctorID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToDoctorResponse(d))
}
