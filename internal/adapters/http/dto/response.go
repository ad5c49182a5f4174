// Package dto holds the JSON shapes of the HTTP API and its RFC 9457 problem
// responses.
package dto

import "github.com/jsamuelsen11/ward-alert-service/internal/domain/ward"

// PatientResponse is a patient as returned by the API.
type PatientResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
}

// PatientListResponse wraps a patient listing.
type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Count    int               `json:"count"`
}

// DoctorResponse is a doctor as returned by the API.
type DoctorResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DoctorListResponse wraps a doctor listing.
type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Count   int              `json:"count"`
}

func ToPatientResponse(p ward.Patient) PatientResponse {
	return PatientResponse{ID: p.ID, Name: p.Name, Sector: p.Sector}
}

func ToPatientListResponse(patients []ward.Patient) PatientListResponse {
	items := make([]PatientResponse, len(patients))
	for i, p := range patients {
		items[i] = ToPatientResponse(p)
	}
	return PatientListResponse{Patients: items, Count: len(items)}
}

func ToDoctorResponse(d ward.Doctor) DoctorResponse {
	return DoctorResponse{ID: d.ID, Name: d.Name}
}

func ToDoctorListResponse(doctors []ward.Doctor) DoctorListResponse {
	items := make([]DoctorResponse, len(doctors))
	for i, d := range doctors {
		items[i] = ToDoctorResponse(d)
	}
	return DoctorListResponse{Doctors: items, Count: len(items)}
}

// LivenessResponse is the body of GET /health/live.
type LivenessResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse is the body of GET /health/ready. Checks maps each
// component name to "ok" or its failure text.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
