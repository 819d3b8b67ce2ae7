package service

import (
	"context"

	"hospitaldesk-backend/internal/domain"
)

// LineInput is one provisional prescription line as submitted by the front
// desk. Unit prices are never part of the input; they are snapshotted from
// the catalog at finalize time.
type LineInput struct {
	MedicationID      string `json:"medication_id"`
	Quantity          int32  `json:"quantity"`
	DosageInstruction string `json:"dosage_instruction"`
}

type StockService interface {
	GetMedication(ctx context.Context, id string) (*domain.Medication, error)
	ListMedications(ctx context.Context, page, pageSize int32) ([]domain.Medication, int32, error)
	// Reserve atomically checks and decrements stock for one medication.
	Reserve(ctx context.Context, medicationID string, quantity int32) error
	// Release puts a reserved quantity back (compensation path).
	Release(ctx context.Context, medicationID string, quantity int32) error
	LowStock(ctx context.Context, threshold int32) ([]domain.Medication, error)
}

type PrescriptionService interface {
	// ValidateLine checks a provisional line against the catalog and
	// current stock. It charges nothing; stock is only committed at
	// finalize time.
	ValidateLine(ctx context.Context, line LineInput) error
	// Finalize validates every line, snapshots unit prices, reserves stock
	// all-or-nothing, and persists the prescription.
	Finalize(ctx context.Context, patientID, doctorID, date string, lines []LineInput) (*domain.Prescription, error)
	Get(ctx context.Context, id string) (*domain.Prescription, error)
	ListByPatient(ctx context.Context, patientID string, page, pageSize int32) ([]domain.Prescription, int32, error)
	// Delete removes a finalized prescription and restores stock for all
	// of its lines.
	Delete(ctx context.Context, id string) error
}

type StayService interface {
	Admit(ctx context.Context, patientID, roomID, admitDate string) (*domain.InpatientStay, error)
	// Discharge finalizes the stay and returns it along with the billable
	// length of stay in days.
	Discharge(ctx context.Context, stayID, dischargeDate string) (*domain.InpatientStay, int32, error)
	Get(ctx context.Context, id string) (*domain.InpatientStay, error)
	ListByPatient(ctx context.Context, patientID string, page, pageSize int32) ([]domain.InpatientStay, int32, error)
	Delete(ctx context.Context, id string) error
}

type BillingService interface {
	// Estimate derives an itemized cost estimate for a patient. Stay and
	// prescription are independently optional; absence of either yields a
	// zero component, absence of both a zero total.
	Estimate(ctx context.Context, patientID string, stayID, prescriptionID *string) (*domain.Estimate, error)
}

type TransactionService interface {
	// Create re-runs the billing estimator and persists its total as an
	// immutable snapshot.
	Create(ctx context.Context, patientID, prescriptionID string, stayID *string, method domain.PaymentMethod) (*domain.Transaction, error)
	// UpdateMethod changes the payment method, the only mutable field.
	UpdateMethod(ctx context.Context, id string, method domain.PaymentMethod) error
	Get(ctx context.Context, id string) (*domain.Transaction, error)
	ListByPatient(ctx context.Context, patientID string, page, pageSize int32) ([]domain.Transaction, int32, error)
	Delete(ctx context.Context, id string) error
}

type RoomService interface {
	Get(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Room, int32, error)
}
