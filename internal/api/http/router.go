package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"hospitaldesk-backend/internal/service"
)

type listResponse struct {
	Items      any   `json:"items"`
	TotalCount int32 `json:"total_count"`
}

func pagination(r *http.Request) (page, pageSize int32) {
	page, pageSize = 1, 20
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v > 0 {
		pageSize = int32(v)
	}
	return page, pageSize
}

// NewRouter wires every handler onto the API surface.
func NewRouter(
	prescriptionSvc service.PrescriptionService,
	staySvc service.StayService,
	billingSvc service.BillingService,
	transactionSvc service.TransactionService,
	stockSvc service.StockService,
	roomSvc service.RoomService,
) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	ph := NewPrescriptionHandler(prescriptionSvc)
	api.HandleFunc("/prescriptions/validate-line", ph.ValidateLine).Methods(http.MethodPost)
	api.HandleFunc("/prescriptions", ph.Finalize).Methods(http.MethodPost)
	api.HandleFunc("/prescriptions/{id}", ph.Get).Methods(http.MethodGet)
	api.HandleFunc("/prescriptions/{id}", ph.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/patients/{id}/prescriptions", ph.ListByPatient).Methods(http.MethodGet)

	sh := NewStayHandler(staySvc)
	api.HandleFunc("/stays", sh.Admit).Methods(http.MethodPost)
	api.HandleFunc("/stays/{id}/discharge", sh.Discharge).Methods(http.MethodPost)
	api.HandleFunc("/stays/{id}", sh.Get).Methods(http.MethodGet)
	api.HandleFunc("/stays/{id}", sh.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/patients/{id}/stays", sh.ListByPatient).Methods(http.MethodGet)

	bh := NewBillingHandler(billingSvc)
	api.HandleFunc("/billing/estimate", bh.Estimate).Methods(http.MethodGet)

	th := NewTransactionHandler(transactionSvc)
	api.HandleFunc("/transactions", th.Create).Methods(http.MethodPost)
	api.HandleFunc("/transactions/{id}", th.UpdateMethod).Methods(http.MethodPatch)
	api.HandleFunc("/transactions/{id}", th.Get).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{id}", th.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/patients/{id}/transactions", th.ListByPatient).Methods(http.MethodGet)

	ch := NewCatalogHandler(stockSvc, roomSvc)
	api.HandleFunc("/medications", ch.ListMedications).Methods(http.MethodGet)
	api.HandleFunc("/medications/{id}", ch.GetMedication).Methods(http.MethodGet)
	api.HandleFunc("/rooms", ch.ListRooms).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}", ch.GetRoom).Methods(http.MethodGet)

	return r
}
