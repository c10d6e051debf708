package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"promptlab/internal/store"
)

func newPreviewRouter(s *store.Store) http.Handler {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/prompts/{id}/preview", NewPreviewHandler(s))
	return r
}

func TestPreviewHandler(t *testing.T) {
	s := store.New()
	p, _ := s.CreatePrompt(store.PromptInput{
		Title:       "Greeter",
		Content:     "# Greeting\n\nHello **{{name}}**, welcome to {{place}}.",
		Description: strPtr("says hello"),
	})
	router := newPreviewRouter(s)

	w := doRequest(t, router, http.MethodGet, "/prompts/"+p.ID+"/preview", "")
	if w.Code != http.StatusOK {
		t.Fatalf("preview status = %v, want 200 (body %s)", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, "<h1") {
		t.Error("preview body has no rendered heading")
	}
	if !strings.Contains(body, "<strong>") {
		t.Error("preview body has no rendered bold text")
	}
	if !strings.Contains(body, "says hello") {
		t.Error("preview body is missing the description")
	}
	for _, variable := range []string{"name", "place"} {
		if !strings.Contains(body, ">"+variable+"</span>") {
			t.Errorf("preview body is missing variable %q", variable)
		}
	}
}

func TestPreviewHandler_NotFound(t *testing.T) {
	router := newPreviewRouter(store.New())

	w := doRequest(t, router, http.MethodGet, "/prompts/nonexistent-id/preview", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("preview missing status = %v, want 404", w.Code)
	}
}
