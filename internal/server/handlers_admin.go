package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gregglawdallas/caseval/internal/domain"
	"github.com/gregglawdallas/caseval/internal/output"
	"github.com/gregglawdallas/caseval/internal/store"
)

func (s *Server) handleGetStandardConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.store.GetStandardConfig(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "load config")
		return
	}
	s.respondJSON(w, http.StatusOK, cfg)
}

func (s *Server) handlePutStandardConfig(w http.ResponseWriter, r *http.Request) {
	var cfg domain.StandardCalculatorConfig
	if !s.decode(w, r, &cfg) {
		return
	}
	if err := s.store.SaveStandardConfig(r.Context(), cfg); err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleGetSeriousConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.store.GetSeriousConfig(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "load config")
		return
	}
	s.respondJSON(w, http.StatusOK, cfg)
}

func (s *Server) handlePutSeriousConfig(w http.ResponseWriter, r *http.Request) {
	var cfg domain.SeriousCalculatorConfig
	if !s.decode(w, r, &cfg) {
		return
	}
	if err := s.store.SaveSeriousConfig(r.Context(), cfg); err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleGetDeathConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.store.GetDeathConfig(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "load config")
		return
	}
	s.respondJSON(w, http.StatusOK, cfg)
}

func (s *Server) handlePutDeathConfig(w http.ResponseWriter, r *http.Request) {
	var cfg domain.WrongfulDeathConfig
	if !s.decode(w, r, &cfg) {
		return
	}
	if err := s.store.SaveDeathConfig(r.Context(), cfg); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleResetConfigs(w http.ResponseWriter, r *http.Request) {
	if err := s.store.ResetConfigs(r.Context()); err != nil {
		s.respondError(w, http.StatusInternalServerError, "reset configs")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (s *Server) handleListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := s.store.ListLeads(r.Context(), store.LeadFilter{
		Source: domain.CalculatorSource(r.URL.Query().Get("source")),
	})
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "list leads")
		return
	}
	if leads == nil {
		leads = []domain.CalculatorLead{}
	}
	s.respondJSON(w, http.StatusOK, leads)
}

func (s *Server) handleExportLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := s.store.ListLeads(r.Context(), store.LeadFilter{})
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "list leads")
		return
	}

	data, err := output.LeadsCSV(leads)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "render csv")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="leads.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleDeleteLead(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteLead(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleArchiveLead(w http.ResponseWriter, r *http.Request) {
	if err := s.store.ArchiveLead(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "archived"})
}

func (s *Server) handleRecoverLead(w http.ResponseWriter, r *http.Request) {
	if err := s.store.RecoverLead(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "recovered"})
}

func (s *Server) handleListArchive(w http.ResponseWriter, r *http.Request) {
	archived, err := s.store.ListArchive(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "list archive")
		return
	}
	if archived == nil {
		archived = []domain.ArchivedLead{}
	}
	s.respondJSON(w, http.StatusOK, archived)
}

func (s *Server) handleClearArchive(w http.ResponseWriter, r *http.Request) {
	n, err := s.store.ClearArchive(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "clear archive")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]int{"cleared": n})
}

func (s *Server) handleAddBenchmark(w http.ResponseWriter, r *http.Request) {
	var b domain.SettlementBenchmark
	if !s.decode(w, r, &b) {
		return
	}
	if b.Text == "" {
		s.respondError(w, http.StatusUnprocessableEntity, "text is required")
		return
	}

	added, err := s.store.AddBenchmark(r.Context(), b)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "add benchmark")
		return
	}
	s.respondJSON(w, http.StatusCreated, added)
}

func (s *Server) handleDeleteBenchmark(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteBenchmark(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
