package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hospitaldesk-backend/internal/domain"
	"hospitaldesk-backend/internal/service"
)

func newStayService(stayRepo *MockStayRepo, patRepo *MockPatientRepo, roomRepo *MockRoomRepo) service.StayService {
	return service.NewStayService(stayRepo, patRepo, roomRepo)
}

func TestStayService_Admit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		stayRepo := new(MockStayRepo)
		patRepo := new(MockPatientRepo)
		roomRepo := new(MockRoomRepo)
		svc := newStayService(stayRepo, patRepo, roomRepo)

		patRepo.On("GetByID", ctx, "pat-1").Return(&domain.Patient{ID: "pat-1", AdmissionStatus: domain.AdmissionStatusOutpatient}, nil)
		roomRepo.On("GetByID", ctx, "room-1").Return(&domain.Room{ID: "room-1", Status: domain.RoomStatusAvailable}, nil)
		stayRepo.On("Admit", ctx, mock.AnythingOfType("*domain.InpatientStay")).Return(nil)

		stay, err := svc.Admit(ctx, "pat-1", "room-1", "2025-01-10")
		assert.NoError(t, err)
		assert.NotEmpty(t, stay.ID)
		assert.Equal(t, "pat-1", stay.PatientID)
		assert.Equal(t, "room-1", stay.RoomID)
		assert.Equal(t, domain.StayStatusActive, stay.Status)
		assert.Nil(t, stay.DischargeDate)
		stayRepo.AssertExpectations(t)
	})

	t.Run("Invalid admit date", func(t *testing.T) {
		stayRepo := new(MockStayRepo)
		svc := newStayService(stayRepo, new(MockPatientRepo), new(MockRoomRepo))

		_, err := svc.Admit(ctx, "pat-1", "room-1", "10/01/2025")
		assert.True(t, domain.IsKind(err, domain.KindValidation))
		stayRepo.AssertNotCalled(t, "Admit", ctx, mock.Anything)
	})

	t.Run("Unknown patient", func(t *testing.T) {
		stayRepo := new(MockStayRepo)
		patRepo := new(MockPatientRepo)
		svc := newStayService(stayRepo, patRepo, new(MockRoomRepo))
		patRepo.On("GetByID", ctx, "pat-x").Return(nil, domain.NewNotFound("patient pat-x not found"))

		_, err := svc.Admit(ctx, "pat-x", "room-1", "2025-01-10")
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
		stayRepo.AssertNotCalled(t, "Admit", ctx, mock.Anything)
	})

	t.Run("Room occupied conflict surfaces unchanged", func(t *testing.T) {
		stayRepo := new(MockStayRepo)
		patRepo := new(MockPatientRepo)
		roomRepo := new(MockRoomRepo)
		svc := newStayService(stayRepo, patRepo, roomRepo)

		patRepo.On("GetByID", ctx, "pat-1").Return(&domain.Patient{ID: "pat-1"}, nil)
		roomRepo.On("GetByID", ctx, "room-1").Return(&domain.Room{ID: "room-1", Status: domain.RoomStatusOccupied}, nil)
		stayRepo.On("Admit", ctx, mock.AnythingOfType("*domain.InpatientStay")).
			Return(domain.NewConflict("room room-1 is not available"))

		_, err := svc.Admit(ctx, "pat-1", "room-1", "2025-01-10")
		assert.True(t, domain.IsKind(err, domain.KindConflict))
	})

	t.Run("Patient already admitted conflict surfaces unchanged", func(t *testing.T) {
		stayRepo := new(MockStayRepo)
		patRepo := new(MockPatientRepo)
		roomRepo := new(MockRoomRepo)
		svc := newStayService(stayRepo, patRepo, roomRepo)

		patRepo.On("GetByID", ctx, "pat-1").Return(&domain.Patient{ID: "pat-1", AdmissionStatus: domain.AdmissionStatusInpatient}, nil)
		roomRepo.On("GetByID", ctx, "room-2").Return(&domain.Room{ID: "room-2", Status: domain.RoomStatusAvailable}, nil)
		stayRepo.On("Admit", ctx, mock.AnythingOfType("*domain.InpatientStay")).
			Return(domain.NewConflict("patient pat-1 already has an active stay"))

		_, err := svc.Admit(ctx, "pat-1", "room-2", "2025-01-10")
		assert.True(t, domain.IsKind(err, domain.KindConflict))
	})
}

func TestStayService_Discharge(t *testing.T) {
	ctx := context.Background()

	activeStay := func() *domain.InpatientStay {
		return &domain.InpatientStay{
			ID:        "stay-1",
			PatientID: "pat-1",
			RoomID:    "room-1",
			AdmitDate: "2025-01-10",
			Status:    domain.StayStatusActive,
		}
	}

	t.Run("Success computes length of stay", func(t *testing.T) {
		stayRepo := new(MockStayRepo)
		svc := newStayService(stayRepo, new(MockPatientRepo), new(MockRoomRepo))

		stayRepo.On("GetByID", ctx, "stay-1").Return(activeStay(), nil)
		stayRepo.On("Discharge", ctx, "stay-1", "2025-01-13").Return(nil)

		stay, lengthOfStay, err := svc.Discharge(ctx, "stay-1", "2025-01-13")
		assert.NoError(t, err)
		assert.Equal(t, int32(3), lengthOfStay)
		assert.Equal(t, domain.StayStatusDischarged, stay.Status)
		assert.Equal(t, "2025-01-13", *stay.DischargeDate)
		stayRepo.AssertExpectations(t)
	})

	t.Run("Same-day discharge bills one day", func(t *testing.T) {
		stayRepo := new(MockStayRepo)
		svc := newStayService(stayRepo, new(MockPatientRepo), new(MockRoomRepo))

		stayRepo.On("GetByID", ctx, "stay-1").Return(activeStay(), nil)
		stayRepo.On("Discharge", ctx, "stay-1", "2025-01-10").Return(nil)

		_, lengthOfStay, err := svc.Discharge(ctx, "stay-1", "2025-01-10")
		assert.NoError(t, err)
		assert.Equal(t, int32(1), lengthOfStay)
	})

	t.Run("Discharge before admit rejected", func(t *testing.T) {
		stayRepo := new(MockStayRepo)
		svc := newStayService(stayRepo, new(MockPatientRepo), new(MockRoomRepo))

		stayRepo.On("GetByID", ctx, "stay-1").Return(activeStay(), nil)

		_, _, err := svc.Discharge(ctx, "stay-1", "2025-01-09")
		assert.True(t, domain.IsKind(err, domain.KindState))
		stayRepo.AssertNotCalled(t, "Discharge", ctx, "stay-1", "2025-01-09")
	})

	t.Run("Already discharged", func(t *testing.T) {
		stayRepo := new(MockStayRepo)
		svc := newStayService(stayRepo, new(MockPatientRepo), new(MockRoomRepo))

		done := activeStay()
		done.Status = domain.StayStatusDischarged
		stayRepo.On("GetByID", ctx, "stay-1").Return(done, nil)

		_, _, err := svc.Discharge(ctx, "stay-1", "2025-01-13")
		assert.True(t, domain.IsKind(err, domain.KindState))
		stayRepo.AssertNotCalled(t, "Discharge", ctx, "stay-1", "2025-01-13")
	})

	t.Run("Invalid discharge date", func(t *testing.T) {
		stayRepo := new(MockStayRepo)
		svc := newStayService(stayRepo, new(MockPatientRepo), new(MockRoomRepo))

		_, _, err := svc.Discharge(ctx, "stay-1", "not-a-date")
		assert.True(t, domain.IsKind(err, domain.KindValidation))
		stayRepo.AssertNotCalled(t, "GetByID", ctx, "stay-1")
	})

	t.Run("Unknown stay", func(t *testing.T) {
		stayRepo := new(MockStayRepo)
		svc := newStayService(stayRepo, new(MockPatientRepo), new(MockRoomRepo))

		stayRepo.On("GetByID", ctx, "stay-x").Return(nil, domain.NewNotFound("stay stay-x not found"))

		_, _, err := svc.Discharge(ctx, "stay-x", "2025-01-13")
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})
}
