package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/ward-alert-service/internal/domain/ward"
	"github.com/jsamuelsen11/ward-alert-service/internal/platform/logging"
	"github.com/jsamuelsen11/ward-alert-service/internal/ports"
)

var _ ports.DirectoryService = (*DirectoryService)(nil)

// DirectoryService exposes the directory to the read endpoints.
type DirectoryService struct {
	directory ports.Directory
	logger    *slog.Logger
}

// NewDirectoryService creates a DirectoryService. A nil logger discards output.
func NewDirectoryService(dir ports.Directory, logger *slog.Logger) *DirectoryService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &DirectoryService{directory: dir, logger: logger}
}

// Patient returns one patient.
func (s *DirectoryService) Patient(ctx context.Context, id string) (ward.Patient, error) {
	p, err := s.directory.Patient(id)
	if err != nil {
		s.logger.DebugContext(ctx, "patient lookup failed",
			slog.String("operation", "Patient"),
			slog.String("patient_id", id),
			slog.Any("error", err),
		)
		return ward.Patient{}, err
	}
	return p, nil
}

// Patients returns every patient.
func (s *DirectoryService) Patients(_ context.Context) []ward.Patient {
	return s.directory.Patients()
}

// Doctor returns one doctor.
func (s *DirectoryService) Doctor(ctx context.Context, id string) (ward.Doctor, error) {
	d, err := s.directory.Doctor(id)
	if err != nil {
		s.logger.DebugContext(ctx, "doctor lookup failed",
			slog.String("operation", "Doctor"),
			slog.String("doctor_id", id),
			slog.Any("error", err),
		)
		return ward.Doctor{}, err
	}
	return d, nil
}

// Doctors returns every doctor.
func (s *DirectoryService) Doctors(_ context.Context) []ward.Doctor {
	return s.directory.Doctors()
}
