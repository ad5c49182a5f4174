package dto

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/jsamuelsen11/ward-alert-service/internal/domain"
	"github.com/jsamuelsen11/ward-alert-service/internal/domain/ward"
)

// PatientListQuery holds the optional filters of GET /api/v1/patients.
type PatientListQuery struct {
	Sector string
}

// ParsePatientListQuery reads the query string of r.
func ParsePatientListQuery(r *http.Request) PatientListQuery {
	return PatientListQuery{Sector: r.URL.Query().Get("sector")}
}

// Validate rejects sector filters that no record could carry.
func (q *PatientListQuery) Validate() error {
	if strings.ContainsFunc(q.Sector, unicode.IsSpace) {
		return &domain.ValidationError{Fields: map[string]string{"query.sector": "must not contain whitespace"}}
	}
	return nil
}

// Apply returns the patients matching the query, preserving order.
func (q *PatientListQuery) Apply(patients []ward.Patient) []ward.Patient {
	if q.Sector == "" {
		return patients
	}
	out := make([]ward.Patient, 0, len(patients))
	for _, p := range patients {
		if p.Sector == q.Sector {
			out = append(out, p)
		}
	}
	return out
}
