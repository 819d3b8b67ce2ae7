package service

import (
	"context"

	"github.com/google/uuid"

	"hospitaldesk-backend/internal/domain"
	"hospitaldesk-backend/internal/logger"
	"hospitaldesk-backend/internal/repository"
)

type transactionService struct {
	transactionRepo repository.TransactionRepository
	billingSvc      BillingService
}

func NewTransactionService(transactionRepo repository.TransactionRepository, billingSvc BillingService) TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		billingSvc:      billingSvc,
	}
}

func (s *transactionService) Create(ctx context.Context, patientID, prescriptionID string, stayID *string, method domain.PaymentMethod) (*domain.Transaction, error) {
	logger.EnterMethod("transactionService.Create", "patient_id", patientID, "prescription_id", prescriptionID, "method", method)

	if !domain.ValidPaymentMethod(method) {
		return nil, domain.NewValidation("unknown payment method %q", method)
	}
	if prescriptionID == "" {
		return nil, domain.NewValidation("prescription id is required")
	}

	// The estimator validates existence and ownership of every reference
	// and produces the total that gets frozen on the record.
	est, err := s.billingSvc.Estimate(ctx, patientID, stayID, &prescriptionID)
	if err != nil {
		logger.ExitMethodWithError("transactionService.Create", err, "patient_id", patientID)
		return nil, err
	}

	tx := &domain.Transaction{
		ID:             uuid.New().String(),
		PatientID:      patientID,
		PrescriptionID: prescriptionID,
		StayID:         stayID,
		Method:         method,
		TotalMinor:     est.TotalMinor,
	}
	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		logger.ExitMethodWithError("transactionService.Create", err, "patient_id", patientID)
		return nil, domain.NewInternal(err, "failed to persist transaction")
	}

	logger.ExitMethod("transactionService.Create", "transaction_id", tx.ID, "total_minor", tx.TotalMinor)
	return tx, nil
}

func (s *transactionService) UpdateMethod(ctx context.Context, id string, method domain.PaymentMethod) error {
	if !domain.ValidPaymentMethod(method) {
		return domain.NewValidation("unknown payment method %q", method)
	}
	return s.transactionRepo.UpdateMethod(ctx, id, method)
}

func (s *transactionService) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	return s.transactionRepo.GetByID(ctx, id)
}

func (s *transactionService) ListByPatient(ctx context.Context, patientID string, page, pageSize int32) ([]domain.Transaction, int32, error) {
	return s.transactionRepo.ListByPatient(ctx, patientID, normalizePage(page), normalizePageSize(pageSize))
}

// Delete removes the payment record only; stock and stay state have their
// own lifecycles and are not reversed.
func (s *transactionService) Delete(ctx context.Context, id string) error {
	return s.transactionRepo.Delete(ctx, id)
}
