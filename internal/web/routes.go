package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kozaktomas/img2pdf/internal/web/handlers"
	"github.com/kozaktomas/img2pdf/internal/web/static"
)

func (s *Server) setupRoutes() {
	convertHandler := handlers.NewConvertHandler(s.config, s.spec, s.font)

	// Health check
	s.router.Get("/api/v1/health", handlers.HealthCheck)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/papers", convertHandler.Papers)
		r.Post("/convert", convertHandler.Convert)
		r.Post("/plan", convertHandler.Plan)
	})

	// Upload form
	s.router.Get("/", s.serveIndex)
}

// serveIndex serves the embedded upload page
func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	page, err := static.IndexHTML()
	if err != nil {
		http.Error(w, "upload page not available", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}
