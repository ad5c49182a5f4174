package directory

import (
	"context"
	"database/sql"
	"fmt"

	// Registers the "postgres" driver for sql.Open.
	_ "github.com/lib/pq"

	"github.com/jsamuelsen11/ward-alert-service/internal/domain/ward"
)

// Schema the snapshot loader reads from.
//
//	CREATE TABLE patients (id TEXT PRIMARY KEY, name TEXT NOT NULL, sector TEXT NOT NULL);
//	CREATE TABLE doctors  (id TEXT PRIMARY KEY, name TEXT NOT NULL);
const (
	selectPatients = `SELECT id, name, sector FROM patients ORDER BY id`
	selectDoctors  = `SELECT id, name FROM doctors ORDER BY id`
)

// OpenPostgres opens a connection pool for dsn and verifies it with a ping.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// LoadPostgres reads every patient and doctor once and returns them as a
// Static directory. Later changes to the tables are not observed.
func LoadPostgres(ctx context.Context, db *sql.DB) (*Static, error) {
	patients, err := loadPatients(ctx, db)
	if err != nil {
		return nil, err
	}
	doctors, err := loadDoctors(ctx, db)
	if err != nil {
		return nil, err
	}
	return New(patients, doctors)
}

func loadPatients(ctx context.Context, db *sql.DB) ([]ward.Patient, error) {
	rows, err := db.QueryContext(ctx, selectPatients)
	if err != nil {
		return nil, fmt.Errorf("query patients: %w", err)
	}
	defer rows.Close()

	var patients []ward.Patient
	for rows.Next() {
		var p ward.Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.Sector); err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate patients: %w", err)
	}
	return patients, nil
}

func loadDoctors(ctx context.Context, db *sql.DB) ([]ward.Doctor, error) {
	rows, err := db.QueryContext(ctx, selectDoctors)
	if err != nil {
		return nil, fmt.Errorf("query doctors: %w", err)
	}
	defer rows.Close()

	var doctors []ward.Doctor
	for rows.Next() {
		var d ward.Doctor
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		doctors = append(doctors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate doctors: %w", err)
	}
	return doctors, nil
}

// DBChecker reports whether the directory database is still reachable. The
// loaded snapshot keeps serving when it is not; the check only surfaces the
// condition on the readiness probe.
type DBChecker struct {
	db *sql.DB
}

// NewDBChecker returns a health checker named "directory" for db.
func NewDBChecker(db *sql.DB) *DBChecker {
	return &DBChecker{db: db}
}

// Name implements ports.HealthChecker.
func (c *DBChecker) Name() string { return "directory" }

// HealthCheck pings the database.
func (c *DBChecker) HealthCheck(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return fmt.Errorf("directory: %w", err)
	}
	return nil
}
