package postgres

import (
	"context"
	"database/sql"
	"errors"

	"hospitaldesk-backend/internal/domain"
	"hospitaldesk-backend/internal/repository"
)

type patientRepository struct {
	db *sql.DB
}

func NewPatientRepository(db *sql.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) GetByID(ctx context.Context, id string) (*domain.Patient, error) {
	p := &domain.Patient{}
	query := `SELECT id, name, admission_status, created_on, updated_on FROM patients WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.AdmissionStatus, &p.CreatedOn, &p.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("patient %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

type doctorRepository struct {
	db *sql.DB
}

func NewDoctorRepository(db *sql.DB) repository.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) GetByID(ctx context.Context, id string) (*domain.Doctor, error) {
	d := &domain.Doctor{}
	query := `SELECT id, name, specialty, created_on FROM doctors WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Name, &d.Specialty, &d.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("doctor %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}
