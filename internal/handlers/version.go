package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"promptlab/internal/store"
)

// VersionHandler handles HTTP requests for prompt version history.
type VersionHandler struct {
	store *store.Store
}

// NewVersionHandler creates a new VersionHandler.
func NewVersionHandler(s *store.Store) *VersionHandler {
	return &VersionHandler{store: s}
}

// checkpointRequest is the payload for a manual checkpoint. The body is
// optional; an empty body records a checkpoint without a note.
//
// swagger:model CheckpointRequest
type checkpointRequest struct {
	Note *string `json:"note"`
}

// versionListResponse is the response payload for listing versions.
//
// swagger:model VersionListResponse
type versionListResponse struct {
	Versions []*store.PromptVersion `json:"versions"`
	Total    int                    `json:"total"`
}

// List returns a prompt's versions newest-first, with limit/offset applied
// after sorting.
func (h *VersionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}

	versions, err := h.store.ListVersions(chi.URLParam(r, "id"), limit, offset)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, versionListResponse{Versions: versions, Total: len(versions)})
}

// Get returns one version of a prompt by its number.
func (h *VersionHandler) Get(w http.ResponseWriter, r *http.Request) {
	number, ok := versionNumber(w, r)
	if !ok {
		return
	}

	v, err := h.store.GetVersion(chi.URLParam(r, "id"), number)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, v)
}

// Checkpoint records a manual snapshot of the prompt's current state without
// modifying the prompt.
func (h *VersionHandler) Checkpoint(w http.ResponseWriter, r *http.Request) {
	// The body is optional, so an immediate EOF is not an error.
	var req checkpointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeBadRequest(w, r, "invalid JSON body")
		return
	}

	v, err := h.store.CreateCheckpoint(chi.URLParam(r, "id"), req.Note)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, v)
}

// Revert restores a prompt's content from a prior version. Reverting to a
// version identical to the current state fails with 409.
func (h *VersionHandler) Revert(w http.ResponseWriter, r *http.Request) {
	number, ok := versionNumber(w, r)
	if !ok {
		return
	}

	p, err := h.store.Revert(chi.URLParam(r, "id"), number)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, p)
}

// queryInt parses an optional non-negative integer query parameter, writing
// the error response itself on failure.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		writeBadRequest(w, r, name+" must be a non-negative integer")
		return 0, false
	}
	return n, true
}

// versionNumber parses the version number path parameter.
func versionNumber(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "number")
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		writeBadRequest(w, r, "version number must be a positive integer")
		return 0, false
	}
	return n, true
}
