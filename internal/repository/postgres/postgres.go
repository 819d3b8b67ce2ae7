package postgres

import (
	"database/sql"

	"hospitaldesk-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.MedicationRepository
	repository.RoomRepository
	repository.PatientRepository
	repository.DoctorRepository
	repository.PrescriptionRepository
	repository.StayRepository
	repository.BillingRepository
	repository.TransactionRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		MedicationRepository:   NewMedicationRepository(db),
		RoomRepository:         NewRoomRepository(db),
		PatientRepository:      NewPatientRepository(db),
		DoctorRepository:       NewDoctorRepository(db),
		PrescriptionRepository: NewPrescriptionRepository(db),
		StayRepository:         NewStayRepository(db),
		BillingRepository:      NewBillingRepository(db),
		TransactionRepository:  NewTransactionRepository(db),
	}
}
