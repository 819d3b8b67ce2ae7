package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"hospitaldesk-backend/internal/domain"
	"hospitaldesk-backend/internal/service"
)

// TransactionHandler exposes the transaction ledger over HTTP
type TransactionHandler struct {
	transactionSvc service.TransactionService
}

func NewTransactionHandler(transactionSvc service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionSvc: transactionSvc}
}

type createTransactionRequest struct {
	PatientID      string  `json:"patient_id"`
	PrescriptionID string  `json:"prescription_id"`
	StayID         *string `json:"stay_id,omitempty"`
	Method         string  `json:"method"`
}

type updateTransactionRequest struct {
	Method string `json:"method"`
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	tx, err := h.transactionSvc.Create(r.Context(), req.PatientID, req.PrescriptionID, req.StayID, domain.PaymentMethod(req.Method))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

func (h *TransactionHandler) UpdateMethod(w http.ResponseWriter, r *http.Request) {
	var req updateTransactionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.transactionSvc.UpdateMethod(r.Context(), mux.Vars(r)["id"], domain.PaymentMethod(req.Method)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	tx, err := h.transactionSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (h *TransactionHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	txs, total, err := h.transactionSvc.ListByPatient(r.Context(), mux.Vars(r)["id"], page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: txs, TotalCount: total})
}

func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.transactionSvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
