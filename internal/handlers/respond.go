package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"promptlab/internal/contextutil"
	"promptlab/internal/store"
)

// errorResponse is the wire shape for all error bodies.
//
// swagger:model ErrorResponse
type errorResponse struct {
	Detail string `json:"detail"`
}

// writeJSON encodes v as the response body with the given status. A nil v
// writes only the status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	if v == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctx := r.Context()
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeStoreError translates an engine error into its HTTP status:
// NotFound to 404, InvalidReference and Validation to 400, Conflict to 409.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrInvalidReference), errors.Is(err, store.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrConflict):
		status = http.StatusConflict
	default:
		ctx := r.Context()
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "unexpected store error", "error", err)
	}
	writeJSON(w, r, status, errorResponse{Detail: err.Error()})
}

// writeBadRequest writes a 400 with a plain detail message.
func writeBadRequest(w http.ResponseWriter, r *http.Request, detail string) {
	writeJSON(w, r, http.StatusBadRequest, errorResponse{Detail: detail})
}

// decodeJSON decodes the request body into v, reporting malformed JSON as a
// client error.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.New("invalid JSON body")
	}
	return nil
}
