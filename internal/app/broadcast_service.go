// Package app holds the application services: they resolve patients through
// the directory, encode broadcasts and hand them to the dispatcher. Services
// keep no per-call state and are safe for concurrent use.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jsamuelsen11/ward-alert-service/internal/domain"
	"github.com/jsamuelsen11/ward-alert-service/internal/domain/broadcast"
	"github.com/jsamuelsen11/ward-alert-service/internal/platform/logging"
	"github.com/jsamuelsen11/ward-alert-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/ward-alert-service/internal/ports"
)

var _ ports.BroadcastService = (*BroadcastService)(nil)

// Failure stages recorded in logs and as the broadcast.reason metric
// attribute.
const (
	stageLookup   = "lookup"
	stageWorkDir  = "workdir"
	stageDispatch = "dispatch"
)

// BroadcastService implements ports.BroadcastService.
type BroadcastService struct {
	directory  ports.Directory
	encoder    *broadcast.Encoder
	dispatcher ports.Dispatcher
	workDir    string
	metrics    *telemetry.Metrics
	logger     *slog.Logger
}

// BroadcastOption customizes a BroadcastService.
type BroadcastOption func(*BroadcastService)

// WithWorkDir fixes the directory the agent runs in. Without it the agent
// runs in the process working directory at the time of each call.
func WithWorkDir(dir string) BroadcastOption {
	return func(s *BroadcastService) { s.workDir = dir }
}

// WithMetrics records broadcast outcomes on m.
func WithMetrics(m *telemetry.Metrics) BroadcastOption {
	return func(s *BroadcastService) { s.metrics = m }
}

// NewBroadcastService wires the service. A nil logger discards output.
func NewBroadcastService(
	dir ports.Directory,
	enc *broadcast.Encoder,
	disp ports.Dispatcher,
	logger *slog.Logger,
	opts ...BroadcastOption,
) *BroadcastService {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &BroadcastService{
		directory:  dir,
		encoder:    enc,
		dispatcher: disp,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Setup registers the patient's node with its sector.
func (s *BroadcastService) Setup(ctx context.Context, patientID string) error {
	return s.send(ctx, "Setup", broadcast.KindSetup, patientID)
}

// Critical raises a ward-wide critical alert for the patient.
func (s *BroadcastService) Critical(ctx context.Context, patientID string) error {
	return s.send(ctx, "Critical", broadcast.KindCritical, patientID)
}

func (s *BroadcastService) send(ctx context.Context, op string, kind broadcast.Kind, patientID string) error {
	s.logger.InfoContext(ctx, "broadcast requested",
		slog.String("operation", op),
		slog.String("patient_id", patientID),
	)

	patient, err := s.directory.Patient(patientID)
	if err != nil {
		return s.fail(ctx, op, kind, patientID, stageLookup, err)
	}

	cmd := s.encoder.Encode(s.encoder.Intent(kind, patient))
	s.logger.InfoContext(ctx, "broadcast encoded",
		slog.String("operation", op),
		slog.String("patient_id", patientID),
		slog.String("command", cmd.String()),
	)

	dir, err := s.workingDir()
	if err != nil {
		return s.fail(ctx, op, kind, patientID, stageWorkDir,
			fmt.Errorf("%w: resolving working directory: %w", domain.ErrDispatch, err))
	}

	res, err := s.dispatcher.Dispatch(ctx, cmd, dir)
	if err != nil {
		if !errors.Is(err, domain.ErrDispatch) {
			err = fmt.Errorf("%w: %w", domain.ErrDispatch, err)
		}
		return s.fail(ctx, op, kind, patientID, stageDispatch, err)
	}

	s.logger.InfoContext(ctx, "broadcast sent",
		slog.String("operation", op),
		slog.String("patient_id", patientID),
		slog.Duration("duration", res.Duration),
	)
	s.metrics.RecordBroadcast(ctx, kind.String(), telemetry.ResultSuccess, "")
	return nil
}

func (s *BroadcastService) fail(ctx context.Context, op string, kind broadcast.Kind, patientID, stage string, err error) error {
	s.logger.ErrorContext(ctx, "broadcast failed",
		slog.String("operation", op),
		slog.String("patient_id", patientID),
		slog.String("stage", stage),
		slog.Any("error", err),
	)
	s.metrics.RecordBroadcast(ctx, kind.String(), telemetry.ResultFailure, stage)
	return err
}

func (s *BroadcastService) workingDir() (string, error) {
	if s.workDir != "" {
		return s.workDir, nil
	}
	return os.Getwd()
}
