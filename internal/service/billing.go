package service

import (
	"context"
	"time"

	"hospitaldesk-backend/internal/domain"
	"hospitaldesk-backend/internal/repository"
	"hospitaldesk-backend/internal/utils"
)

type billingService struct {
	billingRepo repository.BillingRepository
}

func NewBillingService(billingRepo repository.BillingRepository) BillingService {
	return &billingService{billingRepo: billingRepo}
}

// Estimate is a pure aggregation over one consistent snapshot: room tariff
// times length of stay plus the prescription total. It persists nothing.
func (s *billingService) Estimate(ctx context.Context, patientID string, stayID, prescriptionID *string) (*domain.Estimate, error) {
	if patientID == "" {
		return nil, domain.NewValidation("patient id is required")
	}

	snap, err := s.billingRepo.Snapshot(ctx, patientID, stayID, prescriptionID)
	if err != nil {
		return nil, err
	}

	est := &domain.Estimate{PatientID: patientID}

	if snap.Stay != nil {
		if snap.Stay.PatientID != patientID {
			return nil, domain.NewLinkage("stay %s does not belong to patient %s", snap.Stay.ID, patientID)
		}
		// An active stay is billed up to today; a discharged one up to its
		// discharge date.
		end := time.Now().Format("2006-01-02")
		if snap.Stay.DischargeDate != nil {
			end = *snap.Stay.DischargeDate
		}
		days, err := utils.LengthOfStayDays(snap.Stay.AdmitDate, end)
		if err != nil {
			return nil, domain.NewInternal(err, "failed to compute length of stay for stay %s", snap.Stay.ID)
		}
		cost := snap.Room.TariffPerDayMinor * int64(days)
		est.RoomCharge = &domain.RoomCharge{
			StayID:            snap.Stay.ID,
			RoomID:            snap.Room.ID,
			RoomName:          snap.Room.Name,
			TariffPerDayMinor: snap.Room.TariffPerDayMinor,
			LengthOfStayDays:  days,
			CostMinor:         cost,
		}
		est.RoomCostMinor = cost
	}

	if snap.Prescription != nil {
		if snap.Prescription.PatientID != patientID {
			return nil, domain.NewLinkage("prescription %s does not belong to patient %s", snap.Prescription.ID, patientID)
		}
		for _, ln := range snap.Prescription.Lines {
			est.MedicineCharges = append(est.MedicineCharges, domain.MedicineCharge{
				MedicationID:   ln.MedicationID,
				MedicationName: ln.MedicationName,
				Quantity:       ln.Quantity,
				UnitPriceMinor: ln.UnitPriceMinor,
				SubtotalMinor:  ln.SubtotalMinor,
			})
		}
		est.MedicineCostMinor = snap.Prescription.TotalMinor
	}

	est.TotalMinor = est.RoomCostMinor + est.MedicineCostMinor
	return est, nil
}
