package http

import (
	"encoding/json"
	"net/http"

	"hospitaldesk-backend/internal/domain"
	"hospitaldesk-backend/internal/logger"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response body", "error", err)
		}
	}
}

// writeError maps the domain error taxonomy onto HTTP status codes.
// Untyped errors are treated as internal and never leak their message.
func writeError(w http.ResponseWriter, err error) {
	kind := domain.KindOf(err)

	var status int
	switch kind {
	case domain.KindValidation:
		status = http.StatusBadRequest
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict, domain.KindState:
		status = http.StatusConflict
	case domain.KindLinkage:
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusInternalServerError
	}

	msg := err.Error()
	if kind == domain.KindInternal {
		logger.Error("Request failed with internal error", "error", err)
		msg = "internal error"
	}
	writeJSON(w, status, errorBody{Error: errorDetail{Kind: string(kind), Message: msg}})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, domain.NewValidation("malformed request body: %v", err))
		return false
	}
	return true
}
