package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"hospitaldesk-backend/internal/domain"
	"hospitaldesk-backend/internal/repository"
	"hospitaldesk-backend/internal/service"
)

func strPtr(s string) *string { return &s }

func TestBillingService_Estimate(t *testing.T) {
	ctx := context.Background()

	dischargedStay := &domain.InpatientStay{
		ID:            "stay-1",
		PatientID:     "pat-1",
		RoomID:        "room-1",
		AdmitDate:     "2025-01-10",
		DischargeDate: strPtr("2025-01-13"),
		Status:        domain.StayStatusDischarged,
	}
	room := &domain.Room{ID: "room-1", Name: "VIP 2A", TariffPerDayMinor: 500000}
	prescription := &domain.Prescription{
		ID:         "pres-1",
		PatientID:  "pat-1",
		TotalMinor: 21000,
		Lines: []domain.PrescriptionLine{
			{MedicationID: "med-a", MedicationName: "Amoxicillin", Quantity: 3, UnitPriceMinor: 2000, SubtotalMinor: 6000},
			{MedicationID: "med-b", MedicationName: "Paracetamol", Quantity: 10, UnitPriceMinor: 1500, SubtotalMinor: 15000},
		},
	}

	t.Run("Room charge only", func(t *testing.T) {
		billingRepo := new(MockBillingRepo)
		svc := service.NewBillingService(billingRepo)

		billingRepo.On("Snapshot", ctx, "pat-1", strPtr("stay-1"), (*string)(nil)).
			Return(&repository.BillingSnapshot{
				Patient: &domain.Patient{ID: "pat-1"},
				Stay:    dischargedStay,
				Room:    room,
			}, nil)

		est, err := svc.Estimate(ctx, "pat-1", strPtr("stay-1"), nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(1500000), est.RoomCostMinor)
		assert.Equal(t, int64(0), est.MedicineCostMinor)
		assert.Equal(t, int64(1500000), est.TotalMinor)
		assert.Equal(t, int32(3), est.RoomCharge.LengthOfStayDays)
		assert.Equal(t, int64(500000), est.RoomCharge.TariffPerDayMinor)
	})

	t.Run("Room and prescription combined", func(t *testing.T) {
		billingRepo := new(MockBillingRepo)
		svc := service.NewBillingService(billingRepo)

		billingRepo.On("Snapshot", ctx, "pat-1", strPtr("stay-1"), strPtr("pres-1")).
			Return(&repository.BillingSnapshot{
				Patient:      &domain.Patient{ID: "pat-1"},
				Stay:         dischargedStay,
				Room:         room,
				Prescription: prescription,
			}, nil)

		est, err := svc.Estimate(ctx, "pat-1", strPtr("stay-1"), strPtr("pres-1"))
		assert.NoError(t, err)
		assert.Equal(t, int64(1500000), est.RoomCostMinor)
		assert.Equal(t, int64(21000), est.MedicineCostMinor)
		assert.Equal(t, int64(1521000), est.TotalMinor)
		assert.Len(t, est.MedicineCharges, 2)
	})

	t.Run("Neither stay nor prescription yields zero total", func(t *testing.T) {
		billingRepo := new(MockBillingRepo)
		svc := service.NewBillingService(billingRepo)

		billingRepo.On("Snapshot", ctx, "pat-1", (*string)(nil), (*string)(nil)).
			Return(&repository.BillingSnapshot{Patient: &domain.Patient{ID: "pat-1"}}, nil)

		est, err := svc.Estimate(ctx, "pat-1", nil, nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), est.TotalMinor)
		assert.Nil(t, est.RoomCharge)
		assert.Empty(t, est.MedicineCharges)
	})

	t.Run("Stay belonging to another patient", func(t *testing.T) {
		billingRepo := new(MockBillingRepo)
		svc := service.NewBillingService(billingRepo)

		foreign := *dischargedStay
		foreign.PatientID = "pat-2"
		billingRepo.On("Snapshot", ctx, "pat-1", strPtr("stay-1"), (*string)(nil)).
			Return(&repository.BillingSnapshot{
				Patient: &domain.Patient{ID: "pat-1"},
				Stay:    &foreign,
				Room:    room,
			}, nil)

		_, err := svc.Estimate(ctx, "pat-1", strPtr("stay-1"), nil)
		assert.True(t, domain.IsKind(err, domain.KindLinkage))
	})

	t.Run("Prescription belonging to another patient", func(t *testing.T) {
		billingRepo := new(MockBillingRepo)
		svc := service.NewBillingService(billingRepo)

		foreign := *prescription
		foreign.PatientID = "pat-2"
		billingRepo.On("Snapshot", ctx, "pat-1", (*string)(nil), strPtr("pres-1")).
			Return(&repository.BillingSnapshot{
				Patient:      &domain.Patient{ID: "pat-1"},
				Prescription: &foreign,
			}, nil)

		_, err := svc.Estimate(ctx, "pat-1", nil, strPtr("pres-1"))
		assert.True(t, domain.IsKind(err, domain.KindLinkage))
	})

	t.Run("Missing patient id", func(t *testing.T) {
		billingRepo := new(MockBillingRepo)
		svc := service.NewBillingService(billingRepo)

		_, err := svc.Estimate(ctx, "", nil, nil)
		assert.True(t, domain.IsKind(err, domain.KindValidation))
		billingRepo.AssertNotCalled(t, "Snapshot", ctx, "", (*string)(nil), (*string)(nil))
	})

	t.Run("Unknown patient passes through", func(t *testing.T) {
		billingRepo := new(MockBillingRepo)
		svc := service.NewBillingService(billingRepo)

		billingRepo.On("Snapshot", ctx, "pat-x", (*string)(nil), (*string)(nil)).
			Return(nil, domain.NewNotFound("patient pat-x not found"))

		_, err := svc.Estimate(ctx, "pat-x", nil, nil)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})
}
