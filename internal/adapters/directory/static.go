// Package directory provides the read-only patient and doctor lookup used by
// the broadcast service. The directory is built once at start-up, either from
// configuration or from a Postgres snapshot, and never changes afterwards.
package directory

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/jsamuelsen11/ward-alert-service/internal/domain"
	"github.com/jsamuelsen11/ward-alert-service/internal/domain/ward"
	"github.com/jsamuelsen11/ward-alert-service/internal/platform/config"
	"github.com/jsamuelsen11/ward-alert-service/internal/ports"
)

var _ ports.Directory = (*Static)(nil)

// Static is an immutable in-memory directory. All methods are safe for
// concurrent use.
type Static struct {
	patients map[string]ward.Patient
	doctors  map[string]ward.Doctor
}

// New validates the records and builds a directory from copies of them.
// Node-addresses must be unique across patients and doctors.
func New(patients []ward.Patient, doctors []ward.Doctor) (*Static, error) {
	d := &Static{
		patients: make(map[string]ward.Patient, len(patients)),
		doctors:  make(map[string]ward.Doctor, len(doctors)),
	}

	for i, p := range patients {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("patient %d (%q): %w", i, p.ID, err)
		}
		if d.taken(p.ID) {
			return nil, duplicate(p.ID)
		}
		d.patients[p.ID] = p
	}

	for i, doc := range doctors {
		if err := doc.Validate(); err != nil {
			return nil, fmt.Errorf("doctor %d (%q): %w", i, doc.ID, err)
		}
		if d.taken(doc.ID) {
			return nil, duplicate(doc.ID)
		}
		d.doctors[doc.ID] = doc
	}

	return d, nil
}

// FromConfig builds a directory from the records declared under
// directory.patients and directory.doctors.
func FromConfig(cfg config.DirectoryConfig) (*Static, error) {
	patients := make([]ward.Patient, 0, len(cfg.Patients))
	for _, r := range cfg.Patients {
		patients = append(patients, ward.Patient{ID: r.ID, Name: r.Name, Sector: r.Sector})
	}

	doctors := make([]ward.Doctor, 0, len(cfg.Doctors))
	for _, r := range cfg.Doctors {
		doctors = append(doctors, ward.Doctor{ID: r.ID, Name: r.Name})
	}

	return New(patients, doctors)
}

// Patient returns the patient registered under id.
func (d *Static) Patient(id string) (ward.Patient, error) {
	p, ok := d.patients[id]
	if !ok {
		return ward.Patient{}, fmt.Errorf("patient %q: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

// Doctor returns the doctor registered under id.
func (d *Static) Doctor(id string) (ward.Doctor, error) {
	doc, ok := d.doctors[id]
	if !ok {
		return ward.Doctor{}, fmt.Errorf("doctor %q: %w", id, domain.ErrNotFound)
	}
	return doc, nil
}

// Patients returns all patients ordered by node-address.
func (d *Static) Patients() []ward.Patient {
	return slices.SortedFunc(maps.Values(d.patients), func(a, b ward.Patient) int {
		return cmp.Compare(a.ID, b.ID)
	})
}

// Doctors returns all doctors ordered by node-address.
func (d *Static) Doctors() []ward.Doctor {
	return slices.SortedFunc(maps.Values(d.doctors), func(a, b ward.Doctor) int {
		return cmp.Compare(a.ID, b.ID)
	})
}

func (d *Static) taken(id string) bool {
	_, p := d.patients[id]
	_, doc := d.doctors[id]
	return p || doc
}

func duplicate(id string) error {
	return &domain.ValidationError{Fields: map[string]string{"id": fmt.Sprintf("duplicate node-address %s", id)}}
}
