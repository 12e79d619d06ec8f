package server

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/gregglawdallas/caseval/internal/domain"
	"github.com/gregglawdallas/caseval/internal/intake"
	"github.com/gregglawdallas/caseval/internal/valuation"
)

// catalogResponse bundles every table the calculator screens need to render
// their selectors.
type catalogResponse struct {
	Standard       domain.StandardCalculatorConfig `json:"standard"`
	Serious        domain.SeriousCalculatorConfig  `json:"serious"`
	Death          domain.WrongfulDeathConfig      `json:"wrongfulDeath"`
	NonEconFactors []domain.NonEconFactor          `json:"nonEconFactors"`
	SeriousConduct []domain.LiabilityLevel         `json:"seriousConduct"`
	DeathConduct   []domain.LiabilityLevel         `json:"deathConduct"`
	FaultPercents  []int                           `json:"faultPercents"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	std, err := s.store.GetStandardConfig(ctx)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "load catalog")
		return
	}
	serious, err := s.store.GetSeriousConfig(ctx)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "load catalog")
		return
	}
	death, err := s.store.GetDeathConfig(ctx)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "load catalog")
		return
	}

	s.respondJSON(w, http.StatusOK, catalogResponse{
		Standard:       std,
		Serious:        serious,
		Death:          death,
		NonEconFactors: domain.NonEconFactorCatalog(),
		SeriousConduct: domain.SeriousLiabilityLevels(),
		DeathConduct:   domain.DeathLiabilityLevels(),
		FaultPercents:  domain.ValidFaultPercents,
	})
}

func (s *Server) handleBenchmarks(w http.ResponseWriter, r *http.Request) {
	benchmarks, err := s.store.ListBenchmarks(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "load benchmarks")
		return
	}

	injury := r.URL.Query().Get("injury")
	if injury != "" {
		filtered := benchmarks[:0]
		for _, b := range benchmarks {
			if b.InjuryID == injury {
				filtered = append(filtered, b)
			}
		}
		benchmarks = filtered
	}
	if benchmarks == nil {
		benchmarks = []domain.SettlementBenchmark{}
	}
	s.respondJSON(w, http.StatusOK, benchmarks)
}

// Locked estimate responses carry structural metadata only; dollar figures
// stay behind the unlock gate.

type lockedMinorResponse struct {
	Locked           bool   `json:"locked"`
	Multiplier       string `json:"multiplier"`
	BodyPartFellBack bool   `json:"bodyPartFellBack,omitempty"`
	ConductFellBack  bool   `json:"conductFellBack,omitempty"`
}

func (s *Server) handleEstimateMinor(w http.ResponseWriter, r *http.Request) {
	var input domain.MinorCaseInput
	if !s.decode(w, r, &input) {
		return
	}

	cfg, err := s.store.GetStandardConfig(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "load catalog")
		return
	}

	est, err := valuation.ComputeMinor(input, cfg)
	if err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, lockedMinorResponse{
		Locked:           true,
		Multiplier:       est.Multiplier,
		BodyPartFellBack: est.BodyPartFellBack,
		ConductFellBack:  est.ConductFellBack,
	})
}

type lockedSeriousResponse struct {
	Locked            bool   `json:"locked"`
	TierWeight        string `json:"tierWeight"`
	NonEconMultiplier string `json:"nonEconMultiplier"`
	ConductMultiplier string `json:"conductMult"`
	InjuryFellBack    bool   `json:"injuryFellBack,omitempty"`
	ConductFellBack   bool   `json:"conductFellBack,omitempty"`
}

func (s *Server) handleEstimateSerious(w http.ResponseWriter, r *http.Request) {
	var input domain.SeriousCaseInput
	if !s.decode(w, r, &input) {
		return
	}

	cfg, err := s.store.GetSeriousConfig(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "load catalog")
		return
	}

	est, err := valuation.ComputeSerious(input, cfg)
	if err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, lockedSeriousResponse{
		Locked:            true,
		TierWeight:        est.TierWeight.String(),
		NonEconMultiplier: est.NonEconMultiplier.String(),
		ConductMultiplier: est.ConductMultiplier.String(),
		InjuryFellBack:    est.InjuryFellBack,
		ConductFellBack:   est.ConductFellBack,
	})
}

type lockedDeathResponse struct {
	Locked          bool `json:"locked"`
	ConductFellBack bool `json:"conductFellBack,omitempty"`
}

func (s *Server) handleEstimateEstate(w http.ResponseWriter, r *http.Request) {
	var input domain.EstateCaseInput
	if !s.decode(w, r, &input) {
		return
	}

	est, err := valuation.ComputeEstate(input)
	if err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, lockedDeathResponse{Locked: true, ConductFellBack: est.ConductFellBack})
}

func (s *Server) handleEstimateBeneficiary(w http.ResponseWriter, r *http.Request) {
	var input domain.BeneficiaryCaseInput
	if !s.decode(w, r, &input) {
		return
	}

	est, err := valuation.ComputeBeneficiary(input)
	if err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, lockedDeathResponse{Locked: true, ConductFellBack: est.ConductFellBack})
}

// unlock endpoints: recompute server-side, capture the lead, return figures

type unlockResponse[E any] struct {
	Estimate E      `json:"estimate"`
	LeadID   string `json:"leadId,omitempty"`
}

func (s *Server) handleUnlockMinor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Input   domain.MinorCaseInput `json:"input"`
		Contact intake.Contact        `json:"contact"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	cfg, err := s.store.GetStandardConfig(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "load catalog")
		return
	}
	est, err := valuation.ComputeMinor(req.Input, cfg)
	if err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	leadID, ok := s.capture(w, r, req.Contact, intake.BuildMinorLead(req.Input, cfg, est))
	if !ok {
		return
	}
	s.respondJSON(w, http.StatusOK, unlockResponse[domain.MinorEstimate]{Estimate: est, LeadID: leadID})
}

func (s *Server) handleUnlockSerious(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Input   domain.SeriousCaseInput `json:"input"`
		Contact intake.Contact          `json:"contact"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	cfg, err := s.store.GetSeriousConfig(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "load catalog")
		return
	}
	est, err := valuation.ComputeSerious(req.Input, cfg)
	if err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	leadID, ok := s.capture(w, r, req.Contact, intake.BuildSeriousLead(req.Input, cfg, est))
	if !ok {
		return
	}
	s.respondJSON(w, http.StatusOK, unlockResponse[domain.SeriousEstimate]{Estimate: est, LeadID: leadID})
}

func (s *Server) handleUnlockEstate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Input   domain.EstateCaseInput `json:"input"`
		Contact intake.Contact         `json:"contact"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	est, err := valuation.ComputeEstate(req.Input)
	if err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	leadID, ok := s.capture(w, r, req.Contact, intake.BuildEstateLead(req.Input, est))
	if !ok {
		return
	}
	s.respondJSON(w, http.StatusOK, unlockResponse[domain.DeathEstimate]{Estimate: est, LeadID: leadID})
}

func (s *Server) handleUnlockBeneficiary(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Input   domain.BeneficiaryCaseInput `json:"input"`
		Contact intake.Contact              `json:"contact"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	est, err := valuation.ComputeBeneficiary(req.Input)
	if err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	leadID, ok := s.capture(w, r, req.Contact, intake.BuildBeneficiaryLead(req.Input, est))
	if !ok {
		return
	}
	s.respondJSON(w, http.StatusOK, unlockResponse[domain.DeathEstimate]{Estimate: est, LeadID: leadID})
}

// capture runs the unlock gate for an HTTP request. Contact validation
// failures are the caller's problem; a store failure is not, the reveal
// proceeds without a lead id.
func (s *Server) capture(w http.ResponseWriter, r *http.Request, contact intake.Contact, lead domain.CalculatorLead) (string, bool) {
	sess := intake.NewSession(s.store, s.logger)
	saved, err := sess.Unlock(r.Context(), contact, lead)
	if err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return "", false
	}
	if saved == nil {
		return "", true
	}
	s.logger.Info("unlock served",
		zap.String("lead", saved.ID),
		zap.String("source", string(saved.CalculatorSource)))
	return saved.ID, true
}
