package directory_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/ward-alert-service/internal/adapters/directory"
	"github.com/jsamuelsen11/ward-alert-service/internal/domain"
	"github.com/jsamuelsen11/ward-alert-service/internal/platform/config"
	"github.com/jsamuelsen11/ward-alert-service/internal/platform/logging"
)

func TestLoad_ConfigSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	dir, db, err := directory.Load(t.Context(), config.DirectoryConfig{
		Source: config.DirectorySourceConfig,
		Patients: []config.PatientRecord{
			{ID: "0x0001", Name: "Bob", Sector: "S1"},
		},
		Doctors: []config.DoctorRecord{
			{ID: "0x0003", Name: "Doctor 1"},
		},
	}, slog.New(slog.NewTextHandler(&buf, nil)))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if db != nil {
		t.Error("db != nil for config source")
	}
	if _, err := dir.Patient("0x0001"); err != nil {
		t.Errorf("Patient() error = %v", err)
	}
	if !strings.Contains(buf.String(), "patients=1") {
		t.Errorf("load not logged:\n%s", buf.String())
	}
}

func TestLoad_InvalidRecords(t *testing.T) {
	t.Parallel()

	_, _, err := directory.Load(t.Context(), config.DirectoryConfig{
		Source:   config.DirectorySourceConfig,
		Patients: []config.PatientRecord{{ID: "0001", Name: "Bob", Sector: "S1"}},
	}, logging.Discard())
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Load() error = %v, want ErrValidation", err)
	}
}

func TestLoad_UnknownSource(t *testing.T) {
	t.Parallel()

	if _, _, err := directory.Load(t.Context(), config.DirectoryConfig{Source: "ldap"}, logging.Discard()); err == nil {
		t.Error("Load() error = nil, want error")
	}
}
