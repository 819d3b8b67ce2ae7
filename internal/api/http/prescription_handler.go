package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"hospitaldesk-backend/internal/service"
)

// PrescriptionHandler exposes the prescription builder over HTTP
type PrescriptionHandler struct {
	prescriptionSvc service.PrescriptionService
}

func NewPrescriptionHandler(prescriptionSvc service.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{prescriptionSvc: prescriptionSvc}
}

type finalizePrescriptionRequest struct {
	PatientID string              `json:"patient_id"`
	DoctorID  string              `json:"doctor_id"`
	Date      string              `json:"date"`
	Lines     []service.LineInput `json:"lines"`
}

func (h *PrescriptionHandler) ValidateLine(w http.ResponseWriter, r *http.Request) {
	var req service.LineInput
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.prescriptionSvc.ValidateLine(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *PrescriptionHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	var req finalizePrescriptionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p, err := h.prescriptionSvc.Finalize(r.Context(), req.PatientID, req.DoctorID, req.Date, req.Lines)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *PrescriptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.prescriptionSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PrescriptionHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	prescriptions, total, err := h.prescriptionSvc.ListByPatient(r.Context(), mux.Vars(r)["id"], page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: prescriptions, TotalCount: total})
}

func (h *PrescriptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.prescriptionSvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
