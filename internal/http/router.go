package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"promptlab/internal/handlers"
	"promptlab/internal/store"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Store   *store.Store
	Version string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Add CORS and request-scoped logger middleware
	r.Use(CORS)
	r.Use(LoggerMiddleware)

	promptHandler := handlers.NewPromptHandler(deps.Store)
	collectionHandler := handlers.NewCollectionHandler(deps.Store)
	tagHandler := handlers.NewTagHandler(deps.Store)
	versionHandler := handlers.NewVersionHandler(deps.Store)
	previewHandler := handlers.NewPreviewHandler(deps.Store)
	healthHandler := handlers.NewHealthHandler(deps.Version)

	r.Method(http.MethodGet, "/health", healthHandler)

	r.Route("/prompts", func(r chi.Router) {
		r.Get("/", promptHandler.List)
		r.Post("/", promptHandler.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", promptHandler.Get)
			r.Put("/", promptHandler.Replace)
			r.Patch("/", promptHandler.Patch)
			r.Delete("/", promptHandler.Delete)
			r.Method(http.MethodGet, "/preview", previewHandler)

			r.Post("/tags", tagHandler.Attach)
			r.Delete("/tags/{tagID}", tagHandler.Detach)

			r.Route("/versions", func(r chi.Router) {
				r.Get("/", versionHandler.List)
				r.Post("/", versionHandler.Checkpoint)
				r.Get("/{number}", versionHandler.Get)
				r.Post("/{number}/revert", versionHandler.Revert)
			})
		})
	})

	r.Route("/collections", func(r chi.Router) {
		r.Get("/", collectionHandler.List)
		r.Post("/", collectionHandler.Create)
		r.Get("/{id}", collectionHandler.Get)
		r.Delete("/{id}", collectionHandler.Delete)
	})

	r.Route("/tags", func(r chi.Router) {
		r.Get("/", tagHandler.List)
		r.Post("/", tagHandler.Create)
		r.Delete("/{id}", tagHandler.Delete)
	})

	return r
}
