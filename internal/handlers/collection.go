package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"promptlab/internal/store"
)

// CollectionHandler handles HTTP requests for collections.
type CollectionHandler struct {
	store *store.Store
}

// NewCollectionHandler creates a new CollectionHandler.
func NewCollectionHandler(s *store.Store) *CollectionHandler {
	return &CollectionHandler{store: s}
}

// createCollectionRequest is the payload for creating a collection.
//
// swagger:model CreateCollectionRequest
type createCollectionRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// collectionListResponse is the response payload for listing collections.
//
// swagger:model CollectionListResponse
type collectionListResponse struct {
	Collections []*store.Collection `json:"collections"`
	Total       int                 `json:"total"`
}

// List returns all collections.
func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	collections := h.store.ListCollections()
	writeJSON(w, r, http.StatusOK, collectionListResponse{Collections: collections, Total: len(collections)})
}

// Get returns a single collection by id.
func (h *CollectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.store.GetCollection(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, c)
}

// Create stores a new collection.
func (h *CollectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCollectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}
	if req.Name == "" {
		writeBadRequest(w, r, "name is required")
		return
	}

	c, err := h.store.CreateCollection(req.Name, req.Description)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, c)
}

// Delete removes a collection, detaching its prompts.
func (h *CollectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteCollection(chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusNoContent, nil)
}
