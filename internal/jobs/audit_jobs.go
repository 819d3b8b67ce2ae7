package jobs

import (
	"context"

	"hospitaldesk-backend/internal/logger"
)

// AdmissionStatusAudit verifies the denormalized patient admission status
// against the presence of an active stay. Admit and discharge write both
// facts in one transaction, so any mismatch means data was touched outside
// the stay manager and needs operator attention.
func (jr *JobRunner) AdmissionStatusAudit() {
	jr.runWithRecovery("AdmissionStatusAudit", func() {
		ctx := context.Background()

		patients, err := jr.store.StayRepository.ListStatusMismatches(ctx)
		if err != nil {
			logger.Error("Failed to audit admission statuses", "error", err)
			return
		}

		if len(patients) == 0 {
			logger.Info("Admission status audit clean")
			return
		}

		logger.Warn("Admission status mismatches found", "count", len(patients))
		for _, p := range patients {
			logger.Warn("Patient admission status disagrees with active stays",
				"patient_id", p.ID,
				"admission_status", p.AdmissionStatus)
		}
	})
}
