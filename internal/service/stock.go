package service

import (
	"context"

	"hospitaldesk-backend/internal/domain"
	"hospitaldesk-backend/internal/logger"
	"hospitaldesk-backend/internal/repository"
)

type stockService struct {
	medicationRepo repository.MedicationRepository
}

func NewStockService(medicationRepo repository.MedicationRepository) StockService {
	return &stockService{medicationRepo: medicationRepo}
}

func (s *stockService) GetMedication(ctx context.Context, id string) (*domain.Medication, error) {
	return s.medicationRepo.GetByID(ctx, id)
}

func (s *stockService) ListMedications(ctx context.Context, page, pageSize int32) ([]domain.Medication, int32, error) {
	return s.medicationRepo.List(ctx, normalizePage(page), normalizePageSize(pageSize))
}

func (s *stockService) Reserve(ctx context.Context, medicationID string, quantity int32) error {
	logger.EnterMethod("stockService.Reserve", "medication_id", medicationID, "quantity", quantity)
	if quantity < 1 {
		return domain.NewValidation("quantity must be at least 1")
	}
	if err := s.medicationRepo.Reserve(ctx, medicationID, quantity); err != nil {
		logger.ExitMethodWithError("stockService.Reserve", err, "medication_id", medicationID)
		return err
	}
	logger.ExitMethod("stockService.Reserve", "medication_id", medicationID, "quantity", quantity)
	return nil
}

func (s *stockService) Release(ctx context.Context, medicationID string, quantity int32) error {
	logger.EnterMethod("stockService.Release", "medication_id", medicationID, "quantity", quantity)
	if quantity < 1 {
		return domain.NewValidation("quantity must be at least 1")
	}
	if err := s.medicationRepo.Restore(ctx, medicationID, quantity); err != nil {
		logger.ExitMethodWithError("stockService.Release", err, "medication_id", medicationID)
		return err
	}
	logger.ExitMethod("stockService.Release", "medication_id", medicationID, "quantity", quantity)
	return nil
}

func (s *stockService) LowStock(ctx context.Context, threshold int32) ([]domain.Medication, error) {
	return s.medicationRepo.ListBelowStock(ctx, threshold)
}

func normalizePage(page int32) int32 {
	if page < 1 {
		return 1
	}
	return page
}

func normalizePageSize(pageSize int32) int32 {
	if pageSize < 1 || pageSize > 100 {
		return 20
	}
	return pageSize
}
