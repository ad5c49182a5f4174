package ports

import (
	"context"

	"github.com/jsamuelsen11/ward-alert-service/internal/domain/ward"
)

// BroadcastService defines the service port for ward broadcasts.
// Implemented by the application layer; called by inbound adapters.
// Both operations either fully hand a command to the agent or do nothing.
type BroadcastService interface {
	// Setup registers the patient's node with its sector.
	// Returns domain.ErrNotFound for an unknown patient and an error
	// wrapping domain.ErrDispatch when the agent fails.
	Setup(ctx context.Context, patientID string) error

	// Critical raises a group-wide critical alert for the patient.
	// Error semantics match Setup.
	Critical(ctx context.Context, patientID string) error
}

// DirectoryService exposes read access to ward records for inbound adapters.
type DirectoryService interface {
	// Patient returns a single patient. Returns domain.ErrNotFound if absent.
	Patient(ctx context.Context, id string) (ward.Patient, error)

	// Patients returns all patients.
	Patients(ctx context.Context) []ward.Patient

	// Doctor returns a single doctor. Returns domain.ErrNotFound if absent.
	Doctor(ctx context.Context, id string) (ward.Doctor, error)

	// Doctors returns all doctors.
	Doctors(ctx context.Context) []ward.Doctor
}
