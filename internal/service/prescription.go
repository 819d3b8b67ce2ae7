package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"hospitaldesk-backend/internal/domain"
	"hospitaldesk-backend/internal/logger"
	"hospitaldesk-backend/internal/repository"
	"hospitaldesk-backend/internal/utils"
)

type prescriptionService struct {
	prescriptionRepo repository.PrescriptionRepository
	medicationRepo   repository.MedicationRepository
	patientRepo      repository.PatientRepository
	doctorRepo       repository.DoctorRepository
}

func NewPrescriptionService(
	prescriptionRepo repository.PrescriptionRepository,
	medicationRepo repository.MedicationRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
) PrescriptionService {
	return &prescriptionService{
		prescriptionRepo: prescriptionRepo,
		medicationRepo:   medicationRepo,
		patientRepo:      patientRepo,
		doctorRepo:       doctorRepo,
	}
}

// ValidateLine checks a provisional line in the fixed order: medication
// exists, quantity >= 1, dosage instruction present, quantity covered by
// current stock. Nothing is charged; stock can still change before
// finalize, which re-validates under the atomic reserve.
func (s *prescriptionService) ValidateLine(ctx context.Context, line LineInput) error {
	med, err := s.medicationRepo.GetByID(ctx, line.MedicationID)
	if err != nil {
		return err
	}
	if line.Quantity < 1 {
		return domain.NewValidation("quantity must be at least 1")
	}
	if strings.TrimSpace(line.DosageInstruction) == "" {
		return domain.NewValidation("dosage instruction is required")
	}
	if line.Quantity > med.Stock {
		return domain.NewConflict("insufficient stock for medication %s: requested %d, available %d", med.ID, line.Quantity, med.Stock)
	}
	return nil
}

func (s *prescriptionService) Finalize(ctx context.Context, patientID, doctorID, date string, lines []LineInput) (*domain.Prescription, error) {
	logger.EnterMethod("prescriptionService.Finalize", "patient_id", patientID, "doctor_id", doctorID, "lines", len(lines))

	if _, err := utils.ParseDate(date); err != nil {
		return nil, domain.NewValidation("invalid prescription date: %v", err)
	}
	if len(lines) == 0 {
		return nil, domain.NewValidation("prescription must have at least one line")
	}
	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return nil, err
	}
	if _, err := s.doctorRepo.GetByID(ctx, doctorID); err != nil {
		return nil, err
	}

	// Snapshot unit prices and compute totals before touching stock.
	p := &domain.Prescription{
		ID:        uuid.New().String(),
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
	}
	for i, in := range lines {
		if in.Quantity < 1 {
			return nil, domain.NewValidation("line %d: quantity must be at least 1", i+1)
		}
		if strings.TrimSpace(in.DosageInstruction) == "" {
			return nil, domain.NewValidation("line %d: dosage instruction is required", i+1)
		}
		med, err := s.medicationRepo.GetByID(ctx, in.MedicationID)
		if err != nil {
			return nil, err
		}
		subtotal := int64(in.Quantity) * med.UnitPriceMinor
		p.Lines = append(p.Lines, domain.PrescriptionLine{
			ID:                uuid.New().String(),
			PrescriptionID:    p.ID,
			MedicationID:      med.ID,
			MedicationName:    med.Name,
			Quantity:          in.Quantity,
			DosageInstruction: in.DosageInstruction,
			UnitPriceMinor:    med.UnitPriceMinor,
			SubtotalMinor:     subtotal,
			LineNo:            int32(i + 1),
		})
		p.TotalMinor += subtotal
	}

	// Commit stock line by line. Each reserve is a single atomic
	// check-and-decrement; if any line fails, every line reserved in this
	// call is released before returning, so a failed finalize leaves
	// stock unchanged.
	for i := range p.Lines {
		if err := s.medicationRepo.Reserve(ctx, p.Lines[i].MedicationID, p.Lines[i].Quantity); err != nil {
			s.release(ctx, p.Lines[:i])
			logger.ExitMethodWithError("prescriptionService.Finalize", err, "patient_id", patientID)
			return nil, err
		}
	}

	if err := s.prescriptionRepo.Create(ctx, p); err != nil {
		s.release(ctx, p.Lines)
		logger.ExitMethodWithError("prescriptionService.Finalize", err, "patient_id", patientID)
		return nil, domain.NewInternal(err, "failed to persist prescription")
	}

	logger.ExitMethod("prescriptionService.Finalize", "prescription_id", p.ID, "total_minor", p.TotalMinor)
	return p, nil
}

func (s *prescriptionService) release(ctx context.Context, lines []domain.PrescriptionLine) {
	for i := range lines {
		if err := s.medicationRepo.Restore(ctx, lines[i].MedicationID, lines[i].Quantity); err != nil {
			logger.Error("Failed to restore stock during finalize compensation",
				"medication_id", lines[i].MedicationID, "quantity", lines[i].Quantity, "error", err)
		}
	}
}

func (s *prescriptionService) Get(ctx context.Context, id string) (*domain.Prescription, error) {
	return s.prescriptionRepo.GetByID(ctx, id)
}

func (s *prescriptionService) ListByPatient(ctx context.Context, patientID string, page, pageSize int32) ([]domain.Prescription, int32, error) {
	return s.prescriptionRepo.ListByPatient(ctx, patientID, normalizePage(page), normalizePageSize(pageSize))
}

func (s *prescriptionService) Delete(ctx context.Context, id string) error {
	logger.EnterMethod("prescriptionService.Delete", "prescription_id", id)
	if err := s.prescriptionRepo.Delete(ctx, id); err != nil {
		logger.ExitMethodWithError("prescriptionService.Delete", err, "prescription_id", id)
		return err
	}
	logger.ExitMethod("prescriptionService.Delete", "prescription_id", id)
	return nil
}
