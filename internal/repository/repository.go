package repository

import (
	"context"

	"hospitaldesk-backend/internal/domain"
)

type MedicationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Medication, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Medication, int32, error)
	// Reserve atomically decrements stock iff quantity <= current stock.
	// Returns a conflict error when stock is insufficient and a not-found
	// error when the medication does not exist.
	Reserve(ctx context.Context, id string, quantity int32) error
	// Restore adds quantity back to stock (compensation / delete path).
	Restore(ctx context.Context, id string, quantity int32) error
	ListBelowStock(ctx context.Context, threshold int32) ([]domain.Medication, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Room, int32, error)
}

type PatientRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Patient, error)
}

type DoctorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Doctor, error)
}

type PrescriptionRepository interface {
	// Create persists the prescription and all of its lines in one
	// transaction.
	Create(ctx context.Context, p *domain.Prescription) error
	GetByID(ctx context.Context, id string) (*domain.Prescription, error)
	ListByPatient(ctx context.Context, patientID string, page, pageSize int32) ([]domain.Prescription, int32, error)
	// Delete removes the prescription and restores stock for every line,
	// all in one transaction.
	Delete(ctx context.Context, id string) error
}

type StayRepository interface {
	// Admit creates the stay, claims the room, and flips the patient to
	// INPATIENT as one atomic unit. Fails with a conflict error if the
	// patient already has an active stay or the room is not available.
	Admit(ctx context.Context, stay *domain.InpatientStay) error
	// Discharge finalizes the stay, frees the room, and flips the patient
	// back to OUTPATIENT atomically. Fails with a state error if the stay
	// is already discharged.
	Discharge(ctx context.Context, stayID, dischargeDate string) error
	GetByID(ctx context.Context, id string) (*domain.InpatientStay, error)
	ListByPatient(ctx context.Context, patientID string, page, pageSize int32) ([]domain.InpatientStay, int32, error)
	// Delete removes the stay record; an active stay is released first
	// (room freed, patient back to OUTPATIENT) in the same transaction.
	Delete(ctx context.Context, id string) error
	// ListStatusMismatches reports patients whose denormalized admission
	// status disagrees with the presence of an active stay.
	ListStatusMismatches(ctx context.Context) ([]domain.Patient, error)
}

// BillingSnapshot is a mutually consistent read of everything the estimator
// needs, fetched under one repeatable-read transaction.
type BillingSnapshot struct {
	Patient      *domain.Patient
	Stay         *domain.InpatientStay
	Room         *domain.Room
	Prescription *domain.Prescription
}

type BillingRepository interface {
	// Snapshot loads patient, optional stay (with its room), and optional
	// prescription (with lines) in a single read-only transaction so the
	// estimate cannot observe a stay discharged mid-read.
	Snapshot(ctx context.Context, patientID string, stayID, prescriptionID *string) (*BillingSnapshot, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	ListByPatient(ctx context.Context, patientID string, page, pageSize int32) ([]domain.Transaction, int32, error)
	UpdateMethod(ctx context.Context, id string, method domain.PaymentMethod) error
	Delete(ctx context.Context, id string) error
}
