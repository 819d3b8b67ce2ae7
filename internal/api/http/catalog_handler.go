package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"hospitaldesk-backend/internal/service"
)

// CatalogHandler serves the read-only catalog views (medications, rooms)
// the front desk needs; catalog mutation is owned elsewhere.
type CatalogHandler struct {
	stockSvc service.StockService
	roomSvc  service.RoomService
}

func NewCatalogHandler(stockSvc service.StockService, roomSvc service.RoomService) *CatalogHandler {
	return &CatalogHandler{stockSvc: stockSvc, roomSvc: roomSvc}
}

func (h *CatalogHandler) GetMedication(w http.ResponseWriter, r *http.Request) {
	med, err := h.stockSvc.GetMedication(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, med)
}

func (h *CatalogHandler) ListMedications(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	meds, total, err := h.stockSvc.ListMedications(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: meds, TotalCount: total})
}

func (h *CatalogHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.roomSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *CatalogHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	rooms, total, err := h.roomSvc.List(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: rooms, TotalCount: total})
}
