package directory_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/jsamuelsen11/ward-alert-service/internal/adapters/directory"
	"github.com/jsamuelsen11/ward-alert-service/internal/domain"
	"github.com/jsamuelsen11/ward-alert-service/internal/domain/ward"
	"github.com/jsamuelsen11/ward-alert-service/internal/platform/config"
)

var (
	bob    = ward.Patient{ID: "0x0001", Name: "Bob", Sector: "S1"}
	anna   = ward.Patient{ID: "0x0002", Name: "Anna", Sector: "S2"}
	docOne = ward.Doctor{ID: "0x0003", Name: "Doctor 1"}
	docTwo = ward.Doctor{ID: "0x0004", Name: "Doctor 2"}
)

func newWard(t *testing.T) *directory.Static {
	t.Helper()

	d, err := directory.New([]ward.Patient{anna, bob}, []ward.Doctor{docTwo, docOne})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return d
}

func TestStatic_Patient(t *testing.T) {
	t.Parallel()

	d := newWard(t)

	got, err := d.Patient("0x0001")
	if err != nil {
		t.Fatalf("Patient(0x0001) error = %v", err)
	}
	if got != bob {
		t.Errorf("Patient(0x0001) = %+v, want %+v", got, bob)
	}
}

func TestStatic_PatientNotFound(t *testing.T) {
	t.Parallel()

	d := newWard(t)

	for _, id := range []string{"0x9999", "", "0X0001", "0x0003"} {
		_, err := d.Patient(id)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Patient(%q) error = %v, want ErrNotFound", id, err)
		}
	}
}

func TestStatic_Doctor(t *testing.T) {
	t.Parallel()

	d := newWard(t)

	got, err := d.Doctor("0x0004")
	if err != nil {
		t.Fatalf("Doctor(0x0004) error = %v", err)
	}
	if got != docTwo {
		t.Errorf("Doctor(0x0004) = %+v, want %+v", got, docTwo)
	}

	if _, err := d.Doctor("0x0001"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Doctor(0x0001) error = %v, want ErrNotFound", err)
	}
}

func TestStatic_ListsSortedByID(t *testing.T) {
	t.Parallel()

	d := newWard(t)

	patients := d.Patients()
	if len(patients) != 2 || patients[0] != bob || patients[1] != anna {
		t.Errorf("Patients() = %+v, want [bob anna]", patients)
	}

	doctors := d.Doctors()
	if len(doctors) != 2 || doctors[0] != docOne || doctors[1] != docTwo {
		t.Errorf("Doctors() = %+v, want [doctor1 doctor2]", doctors)
	}
}

func TestStatic_IsolatedFromInput(t *testing.T) {
	t.Parallel()

	patients := []ward.Patient{bob}
	d, err := directory.New(patients, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	patients[0].Sector = "S9"

	got, _ := d.Patient("0x0001")
	if got.Sector != "S1" {
		t.Errorf("Sector = %q after mutating input, want S1", got.Sector)
	}

	listed := d.Patients()
	listed[0].Name = "Mallory"
	if got, _ := d.Patient("0x0001"); got.Name != "Bob" {
		t.Errorf("Name = %q after mutating listing, want Bob", got.Name)
	}
}

func TestNew_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		patients []ward.Patient
		doctors  []ward.Doctor
	}{
		{"duplicate patient", []ward.Patient{bob, bob}, nil},
		{"patient and doctor share address", []ward.Patient{bob}, []ward.Doctor{{ID: "0x0001", Name: "Doctor 1"}}},
		{"invalid address", []ward.Patient{{ID: "0001", Name: "Bob", Sector: "S1"}}, nil},
		{"sector with space", []ward.Patient{{ID: "0x0001", Name: "Bob", Sector: "S 1"}}, nil},
		{"doctor without name", nil, []ward.Doctor{{ID: "0x0003"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := directory.New(tt.patients, tt.doctors)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("New() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestFromConfig(t *testing.T) {
	t.Parallel()

	d, err := directory.FromConfig(config.DirectoryConfig{
		Source: config.DirectorySourceConfig,
		Patients: []config.PatientRecord{
			{ID: "0x0001", Name: "Bob", Sector: "S1"},
			{ID: "0x0002", Name: "Anna", Sector: "S2"},
		},
		Doctors: []config.DoctorRecord{{ID: "0x0003", Name: "Doctor 1"}},
	})
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}

	if got, err := d.Patient("0x0002"); err != nil || got != anna {
		t.Errorf("Patient(0x0002) = %+v, %v; want %+v", got, err, anna)
	}
	if got := len(d.Doctors()); got != 1 {
		t.Errorf("len(Doctors()) = %d, want 1", got)
	}
}

func TestStatic_ConcurrentLookups(t *testing.T) {
	t.Parallel()

	d := newWard(t)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := d.Patient("0x0002"); err != nil {
				t.Errorf("Patient(0x0002) error = %v", err)
			}
			_ = d.Patients()
		}()
	}
	wg.Wait()
}
