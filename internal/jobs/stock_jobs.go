package jobs

import (
	"context"

	"hospitaldesk-backend/internal/logger"
)

// LowStockReport logs every medication whose stock has fallen below the
// configured threshold so the pharmacy can reorder.
func (jr *JobRunner) LowStockReport() {
	jr.runWithRecovery("LowStockReport", func() {
		ctx := context.Background()
		threshold := jr.config.Stock.LowStockThreshold

		meds, err := jr.store.MedicationRepository.ListBelowStock(ctx, threshold)
		if err != nil {
			logger.Error("Failed to list low-stock medications", "error", err)
			return
		}

		logger.Info("Low stock report", "threshold", threshold, "count", len(meds))
		for _, m := range meds {
			logger.Warn("Medication below stock threshold",
				"medication_id", m.ID,
				"name", m.Name,
				"stock", m.Stock)
		}
	})
}
