package service

import (
	"context"

	"github.com/google/uuid"

	"hospitaldesk-backend/internal/domain"
	"hospitaldesk-backend/internal/logger"
	"hospitaldesk-backend/internal/repository"
	"hospitaldesk-backend/internal/utils"
)

type stayService struct {
	stayRepo    repository.StayRepository
	patientRepo repository.PatientRepository
	roomRepo    repository.RoomRepository
}

func NewStayService(
	stayRepo repository.StayRepository,
	patientRepo repository.PatientRepository,
	roomRepo repository.RoomRepository,
) StayService {
	return &stayService{
		stayRepo:    stayRepo,
		patientRepo: patientRepo,
		roomRepo:    roomRepo,
	}
}

func (s *stayService) Admit(ctx context.Context, patientID, roomID, admitDate string) (*domain.InpatientStay, error) {
	logger.EnterMethod("stayService.Admit", "patient_id", patientID, "room_id", roomID, "admit_date", admitDate)

	if _, err := utils.ParseDate(admitDate); err != nil {
		return nil, domain.NewValidation("invalid admit date: %v", err)
	}
	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return nil, err
	}
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		return nil, err
	}

	stay := &domain.InpatientStay{
		ID:        uuid.New().String(),
		PatientID: patientID,
		RoomID:    roomID,
		AdmitDate: admitDate,
		Status:    domain.StayStatusActive,
	}
	// The repository performs the three writes (claim room, create stay,
	// flip patient status) as one atomic unit and re-checks both
	// invariants under concurrency.
	if err := s.stayRepo.Admit(ctx, stay); err != nil {
		logger.ExitMethodWithError("stayService.Admit", err, "patient_id", patientID, "room_id", roomID)
		return nil, err
	}

	logger.ExitMethod("stayService.Admit", "stay_id", stay.ID)
	return stay, nil
}

func (s *stayService) Discharge(ctx context.Context, stayID, dischargeDate string) (*domain.InpatientStay, int32, error) {
	logger.EnterMethod("stayService.Discharge", "stay_id", stayID, "discharge_date", dischargeDate)

	if _, err := utils.ParseDate(dischargeDate); err != nil {
		return nil, 0, domain.NewValidation("invalid discharge date: %v", err)
	}
	stay, err := s.stayRepo.GetByID(ctx, stayID)
	if err != nil {
		return nil, 0, err
	}
	if stay.Status != domain.StayStatusActive {
		return nil, 0, domain.NewState("stay %s is already discharged", stayID)
	}

	days, err := utils.DaysBetween(stay.AdmitDate, dischargeDate)
	if err != nil {
		return nil, 0, domain.NewValidation("invalid discharge date: %v", err)
	}
	if days < 0 {
		return nil, 0, domain.NewState("discharge date %s is before admit date %s", dischargeDate, stay.AdmitDate)
	}

	if err := s.stayRepo.Discharge(ctx, stayID, dischargeDate); err != nil {
		logger.ExitMethodWithError("stayService.Discharge", err, "stay_id", stayID)
		return nil, 0, err
	}

	stay.Status = domain.StayStatusDischarged
	stay.DischargeDate = &dischargeDate
	lengthOfStay, err := utils.LengthOfStayDays(stay.AdmitDate, dischargeDate)
	if err != nil {
		return nil, 0, domain.NewInternal(err, "failed to compute length of stay")
	}

	logger.ExitMethod("stayService.Discharge", "stay_id", stayID, "length_of_stay_days", lengthOfStay)
	return stay, lengthOfStay, nil
}

func (s *stayService) Get(ctx context.Context, id string) (*domain.InpatientStay, error) {
	return s.stayRepo.GetByID(ctx, id)
}

func (s *stayService) ListByPatient(ctx context.Context, patientID string, page, pageSize int32) ([]domain.InpatientStay, int32, error) {
	return s.stayRepo.ListByPatient(ctx, patientID, normalizePage(page), normalizePageSize(pageSize))
}

func (s *stayService) Delete(ctx context.Context, id string) error {
	logger.EnterMethod("stayService.Delete", "stay_id", id)
	if err := s.stayRepo.Delete(ctx, id); err != nil {
		logger.ExitMethodWithError("stayService.Delete", err, "stay_id", id)
		return err
	}
	logger.ExitMethod("stayService.Delete", "stay_id", id)
	return nil
}

type roomService struct {
	roomRepo repository.RoomRepository
}

func NewRoomService(roomRepo repository.RoomRepository) RoomService {
	return &roomService{roomRepo: roomRepo}
}

func (s *roomService) Get(ctx context.Context, id string) (*domain.Room, error) {
	return s.roomRepo.GetByID(ctx, id)
}

func (s *roomService) List(ctx context.Context, page, pageSize int32) ([]domain.Room, int32, error) {
	return s.roomRepo.List(ctx, normalizePage(page), normalizePageSize(pageSize))
}
