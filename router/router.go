// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-notes/cliparse"
	"github.com/danielhkuo/quickly-notes/db"
	"github.com/danielhkuo/quickly-notes/handlers"
	"github.com/danielhkuo/quickly-notes/metrics"
	"github.com/danielhkuo/quickly-notes/middleware"
	"github.com/danielhkuo/quickly-notes/services"
)

func NewRouter(conn *db.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()
	m := metrics.NewMetrics()

	// Initialize services and handlers
	projectHandler := handlers.NewProjectHandler(services.NewProjectService(conn))
	noteHandler := handlers.NewNoteHandler(services.NewNoteService(conn), m)

	// Every API route is logged, measured and tagged with an ETag
	api := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithMetrics(m)(middleware.WithETag(m.RecordNotModified)(h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", metrics.Handler())

	// Projects
	mux.HandleFunc("GET /projects", api(projectHandler.List))
	mux.HandleFunc("POST /projects", api(projectHandler.Create))
	mux.HandleFunc("GET /projects/{id}", api(projectHandler.Get))
	mux.HandleFunc("PUT /projects/{id}", api(projectHandler.Update))
	mux.HandleFunc("PATCH /projects/{id}", api(projectHandler.Update))
	mux.HandleFunc("DELETE /projects/{id}", api(projectHandler.Delete))
	mux.HandleFunc("GET /projects/{id}/notes", api(noteHandler.ListForProject))

	// Notes
	mux.HandleFunc("GET /notes", api(noteHandler.List))
	mux.HandleFunc("POST /notes", api(noteHandler.Create))
	mux.HandleFunc("GET /notes/{id}", api(noteHandler.Get))
	mux.HandleFunc("PUT /notes/{id}", api(noteHandler.Update))
	mux.HandleFunc("PATCH /notes/{id}", api(noteHandler.Update))
	mux.HandleFunc("DELETE /notes/{id}", api(noteHandler.Delete))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-notes API v1"))
	})

	var handler http.Handler = mux
	if cfg.RateLimit > 0 {
		handler = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, cfg.TrustProxy, m.RecordRateLimited).Middleware(handler)
	}

	return middleware.CORS(cfg.AllowedOrigin)(handler)
}
