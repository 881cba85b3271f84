// Package router sets up all HTTP routes and middleware chains for the
// cruise blog server. It organizes routes into the operator JSON API and
// the public read path.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"cruisecms/internal/handlers"
	"cruisecms/internal/middleware"
)

// Generation rate limit: article generation holds an upstream model
// connection open for a while, so the allowance is small.
const (
	generateLimit  = 5
	generateWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(api *handlers.API, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check.
	r.Get("/health", healthHandler)

	// Operator API.
	r.Route("/api", func(r chi.Router) {
		r.Get("/ships", api.ListShips)
		r.Get("/ships/{id}/images", api.ListShipImages)
		r.Get("/topics", api.ListTopics)
		r.Get("/style-guides", api.ListStyleGuides)

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", api.ListArticles)
			r.Post("/", api.CreateArticle)
			r.Post("/{id}/publish", api.PublishArticle)
			r.Post("/{id}/unpublish", api.UnpublishArticle)
			r.Delete("/{id}", api.DeleteArticle)
		})

		r.Group(func(r chi.Router) {
			limiter := middleware.NewRateLimiter(generateLimit, generateWindow)
			r.Use(limiter.Middleware)
			r.Post("/generate", api.Generate)
		})
	})

	// Public routes.
	r.Get("/", public.Homepage)
	r.Get("/{slug}", public.Article)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
