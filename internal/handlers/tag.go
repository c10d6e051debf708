package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"promptlab/internal/store"
)

// TagHandler handles HTTP requests for tags and tag attachments.
type TagHandler struct {
	store *store.Store
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(s *store.Store) *TagHandler {
	return &TagHandler{store: s}
}

// createTagRequest is the payload for creating a tag.
//
// swagger:model CreateTagRequest
type createTagRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// attachTagsRequest is the payload for attaching a batch of tags to a prompt.
//
// swagger:model AttachTagsRequest
type attachTagsRequest struct {
	TagIDs []string `json:"tag_ids"`
}

// tagListResponse is the response payload for listing tags.
//
// swagger:model TagListResponse
type tagListResponse struct {
	Tags  []*store.Tag `json:"tags"`
	Total int          `json:"total"`
}

// List returns all tags.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags := h.store.ListTags()
	writeJSON(w, r, http.StatusOK, tagListResponse{Tags: tags, Total: len(tags)})
}

// Create stores a new tag. Names are unique case-insensitively; a duplicate
// fails with 409.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTagRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}
	if req.Name == "" {
		writeBadRequest(w, r, "name is required")
		return
	}

	t, err := h.store.CreateTag(req.Name, req.Description)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, t)
}

// Delete removes a tag, detaching it from every prompt first.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteTag(chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusNoContent, nil)
}

// Attach attaches a batch of tags to a prompt. The batch is all-or-nothing:
// one invalid tag id rejects the whole request.
func (h *TagHandler) Attach(w http.ResponseWriter, r *http.Request) {
	var req attachTagsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}
	if len(req.TagIDs) == 0 {
		writeBadRequest(w, r, "tag_ids is required")
		return
	}

	p, err := h.store.AttachTags(chi.URLParam(r, "id"), req.TagIDs)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, p)
}

// Detach removes a single tag attachment from a prompt.
func (h *TagHandler) Detach(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.DetachTag(chi.URLParam(r, "id"), chi.URLParam(r, "tagID"))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, p)
}
