package http

import (
	"net/http"

	"hospitaldesk-backend/internal/domain"
	"hospitaldesk-backend/internal/service"
)

// BillingHandler exposes the billing estimator over HTTP
type BillingHandler struct {
	billingSvc service.BillingService
}

func NewBillingHandler(billingSvc service.BillingService) *BillingHandler {
	return &BillingHandler{billingSvc: billingSvc}
}

func (h *BillingHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	patientID := q.Get("patient_id")
	if patientID == "" {
		writeError(w, domain.NewValidation("patient_id query parameter is required"))
		return
	}

	var stayID, prescriptionID *string
	if v := q.Get("stay_id"); v != "" {
		stayID = &v
	}
	if v := q.Get("prescription_id"); v != "" {
		prescriptionID = &v
	}

	est, err := h.billingSvc.Estimate(r.Context(), patientID, stayID, prescriptionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, est)
}
