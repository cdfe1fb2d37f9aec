// Package api exposes the priority enhancement engine over HTTP.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/TestRank-hq/testrank/internal/config"
	"github.com/TestRank-hq/testrank/internal/priority"
	"github.com/TestRank-hq/testrank/internal/store"
)

// Server represents the API server
type Server struct {
	cfg      *config.Config
	enhancer *priority.Enhancer
	store    *store.Store // optional, nil disables run persistence
	router   *chi.Mux
}

// NewServer creates a new API server. st may be nil when run persistence
// is disabled.
func NewServer(cfg *config.Config, enhancer *priority.Enhancer, st *store.Store) (*Server, error) {
	s := &Server{
		cfg:      cfg,
		enhancer: enhancer,
		store:    st,
		router:   chi.NewRouter(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// Router returns the HTTP router
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.healthCheck)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/enhance", s.enhanceOne)
		r.Post("/enhance/bulk", s.enhanceBulk)
		r.Post("/quality/score", s.scoreQuality)
		r.Get("/types", s.listTestTypes)
		r.Route("/runs", func(r chi.Router) {
			r.Get("/{runID}", s.getRun)
		})
	})
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
