package ports

import "github.com/jsamuelsen11/ward-alert-service/internal/domain/ward"

// Directory is the read-only lookup of ward records. It is built once at
// start-up and never mutated, so implementations need no locking.
// Implemented by the directory adapter; called by the application layer.
type Directory interface {
	// Patient returns the patient registered under the node-address id.
	// Returns domain.ErrNotFound if no such patient exists.
	Patient(id string) (ward.Patient, error)

	// Doctor returns the doctor registered under the node-address id.
	// Returns domain.ErrNotFound if no such doctor exists.
	Doctor(id string) (ward.Doctor, error)

	// Patients returns every patient ordered by node-address.
	Patients() []ward.Patient

	// Doctors returns every doctor ordered by node-address.
	Doctors() []ward.Doctor
}
