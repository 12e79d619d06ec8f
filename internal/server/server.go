// Package server exposes the calculators, the lead-capture gate, and the
// admin surfaces over HTTP.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/gregglawdallas/caseval/internal/config"
	"github.com/gregglawdallas/caseval/internal/store"
)

// Server holds the HTTP handler dependencies.
type Server struct {
	store  store.Store
	cfg    config.ServerConfig
	logger *zap.Logger
}

// New creates a Server. A nil logger falls back to a no-op logger.
func New(st store.Store, cfg config.ServerConfig, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{store: st, cfg: cfg, logger: logger}
}

// Router assembles the route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Get("/benchmarks", s.handleBenchmarks)

		r.Post("/estimate/minor", s.handleEstimateMinor)
		r.Post("/estimate/serious", s.handleEstimateSerious)
		r.Post("/estimate/estate", s.handleEstimateEstate)
		r.Post("/estimate/beneficiary", s.handleEstimateBeneficiary)

		r.Post("/unlock/minor", s.handleUnlockMinor)
		r.Post("/unlock/serious", s.handleUnlockSerious)
		r.Post("/unlock/estate", s.handleUnlockEstate)
		r.Post("/unlock/beneficiary", s.handleUnlockBeneficiary)

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.requireAdmin)

			r.Get("/catalog/standard", s.handleGetStandardConfig)
			r.Put("/catalog/standard", s.handlePutStandardConfig)
			r.Get("/catalog/serious", s.handleGetSeriousConfig)
			r.Put("/catalog/serious", s.handlePutSeriousConfig)
			r.Get("/catalog/death", s.handleGetDeathConfig)
			r.Put("/catalog/death", s.handlePutDeathConfig)
			r.Post("/catalog/reset", s.handleResetConfigs)

			r.Get("/leads", s.handleListLeads)
			r.Get("/leads/export", s.handleExportLeads)
			r.Delete("/leads/{id}", s.handleDeleteLead)
			r.Post("/leads/{id}/archive", s.handleArchiveLead)
			r.Post("/leads/{id}/recover", s.handleRecoverLead)
			r.Get("/archive", s.handleListArchive)
			r.Delete("/archive", s.handleClearArchive)

			r.Post("/benchmarks", s.handleAddBenchmark)
			r.Delete("/benchmarks/{id}", s.handleDeleteBenchmark)
		})
	})

	return r
}

// requireAdmin enforces the bearer token on admin routes. With no token
// configured the admin surface is open, which suits local use.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.AdminToken != "" && r.Header.Get("Authorization") != "Bearer "+s.cfg.AdminToken {
			s.respondError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
