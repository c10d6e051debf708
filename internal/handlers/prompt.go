package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"promptlab/internal/store"
)

// PromptHandler handles HTTP requests for prompts.
type PromptHandler struct {
	store *store.Store
}

// NewPromptHandler creates a new PromptHandler.
func NewPromptHandler(s *store.Store) *PromptHandler {
	return &PromptHandler{store: s}
}

// promptRequest is the payload for creating or fully replacing a prompt.
//
// swagger:model PromptRequest
type promptRequest struct {
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	Description  *string `json:"description"`
	CollectionID *string `json:"collection_id"`
}

// promptListResponse is the response payload for listing prompts.
//
// swagger:model PromptListResponse
type promptListResponse struct {
	Prompts []*store.Prompt `json:"prompts"`
	Total   int             `json:"total"`
}

// List returns prompts filtered by collection, search query, and tag
// selectors, sorted newest-updated first.
func (h *PromptHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := store.PromptFilter{
		CollectionID: q.Get("collection_id"),
		Search:       q.Get("search"),
	}
	if tags := q.Get("tags"); tags != "" {
		for _, sel := range strings.Split(tags, ",") {
			if sel = strings.TrimSpace(sel); sel != "" {
				filter.Tags = append(filter.Tags, sel)
			}
		}
	}
	switch strings.ToLower(q.Get("match")) {
	case "", "and":
		filter.Match = store.MatchAnd
	case "or":
		filter.Match = store.MatchOr
	default:
		writeBadRequest(w, r, "match must be \"and\" or \"or\"")
		return
	}

	prompts := h.store.ListPrompts(filter)
	writeJSON(w, r, http.StatusOK, promptListResponse{Prompts: prompts, Total: len(prompts)})
}

// Get returns a single prompt by id.
func (h *PromptHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.GetPrompt(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, p)
}

// Create stores a new prompt.
func (h *PromptHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePromptRequest(w, r)
	if !ok {
		return
	}

	p, err := h.store.CreatePrompt(store.PromptInput{
		Title:        req.Title,
		Content:      req.Content,
		Description:  req.Description,
		CollectionID: req.CollectionID,
	})
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, p)
}

// Replace fully overwrites a prompt's content-bearing fields and records a
// new version.
func (h *PromptHandler) Replace(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePromptRequest(w, r)
	if !ok {
		return
	}

	p, err := h.store.ReplacePrompt(chi.URLParam(r, "id"), store.PromptInput{
		Title:        req.Title,
		Content:      req.Content,
		Description:  req.Description,
		CollectionID: req.CollectionID,
	})
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, p)
}

// Patch applies a partial update to a prompt and records a new version.
// Field presence matters: an explicit null clears description or
// collection_id, an absent field is left untouched.
func (h *PromptHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var fields map[string]json.RawMessage
	if err := decodeJSON(r, &fields); err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	var patch store.PromptPatch
	if raw, ok := fields["title"]; ok {
		if patch.Title = decodeStringField(raw); patch.Title == nil {
			writeBadRequest(w, r, "title must be a non-null string")
			return
		}
	}
	if raw, ok := fields["content"]; ok {
		if patch.Content = decodeStringField(raw); patch.Content == nil {
			writeBadRequest(w, r, "content must be a non-null string")
			return
		}
	}
	if raw, ok := fields["description"]; ok {
		patch.SetDescription = true
		patch.Description = decodeStringField(raw)
	}
	if raw, ok := fields["collection_id"]; ok {
		patch.SetCollectionID = true
		patch.CollectionID = decodeStringField(raw)
	}

	p, err := h.store.PatchPrompt(chi.URLParam(r, "id"), patch)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, p)
}

// Delete removes a prompt along with its versions and tag attachments.
func (h *PromptHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeletePrompt(chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusNoContent, nil)
}

// decodePromptRequest decodes and validates a create/replace payload,
// writing the error response itself on failure.
func (h *PromptHandler) decodePromptRequest(w http.ResponseWriter, r *http.Request) (promptRequest, bool) {
	var req promptRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, err.Error())
		return req, false
	}
	if req.Title == "" {
		writeBadRequest(w, r, "title is required")
		return req, false
	}
	if req.Content == "" {
		writeBadRequest(w, r, "content is required")
		return req, false
	}
	return req, true
}

// decodeStringField unmarshals a JSON string field, mapping JSON null (or a
// non-string value) to nil.
func decodeStringField(raw json.RawMessage) *string {
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return s
}
