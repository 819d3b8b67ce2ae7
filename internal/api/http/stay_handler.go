package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"hospitaldesk-backend/internal/domain"
	"hospitaldesk-backend/internal/service"
)

// StayHandler exposes the inpatient stay manager over HTTP
type StayHandler struct {
	staySvc service.StayService
}

func NewStayHandler(staySvc service.StayService) *StayHandler {
	return &StayHandler{staySvc: staySvc}
}

type admitRequest struct {
	PatientID string `json:"patient_id"`
	RoomID    string `json:"room_id"`
	AdmitDate string `json:"admit_date"`
}

type dischargeRequest struct {
	DischargeDate string `json:"discharge_date"`
}

type dischargeResponse struct {
	Stay         *domain.InpatientStay `json:"stay"`
	LengthOfStay int32                 `json:"length_of_stay_days"`
}

func (h *StayHandler) Admit(w http.ResponseWriter, r *http.Request) {
	var req admitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	stay, err := h.staySvc.Admit(r.Context(), req.PatientID, req.RoomID, req.AdmitDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, stay)
}

func (h *StayHandler) Discharge(w http.ResponseWriter, r *http.Request) {
	var req dischargeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	stay, days, err := h.staySvc.Discharge(r.Context(), mux.Vars(r)["id"], req.DischargeDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dischargeResponse{Stay: stay, LengthOfStay: days})
}

func (h *StayHandler) Get(w http.ResponseWriter, r *http.Request) {
	stay, err := h.staySvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stay)
}

func (h *StayHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	stays, total, err := h.staySvc.ListByPatient(r.Context(), mux.Vars(r)["id"], page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: stays, TotalCount: total})
}

func (h *StayHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.staySvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
