// Package intake implements the lead-capture gate: estimates stay locked
// until the prospect submits contact details, and every successful unlock
// captures exactly one lead.
package intake

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/gregglawdallas/caseval/internal/domain"
	"github.com/gregglawdallas/caseval/internal/store"
)

// Contact is the prospect-submitted contact form.
type Contact struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Agreed bool   `json:"agreed"`
}

// Validate checks the unlock form. All three fields are required; the
// disclosure checkbox must be ticked.
func (c Contact) Validate() error {
	if c.Name == "" {
		return eris.New("intake: name is required")
	}
	if c.Phone == "" {
		return eris.New("intake: phone is required")
	}
	if !c.Agreed {
		return eris.New("intake: disclosure must be acknowledged")
	}
	return nil
}

// Session tracks the lock state of one calculator view. Any input change
// relocks the estimate; unlocking again captures a fresh lead.
type Session struct {
	store    store.Store
	logger   *zap.Logger
	unlocked bool
}

// NewSession creates a locked session backed by the given store.
func NewSession(st store.Store, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{store: st, logger: logger}
}

// Unlocked reports whether figures are currently revealed.
func (s *Session) Unlocked() bool {
	return s.unlocked
}

// Touch relocks the session. Call it on every input mutation so a changed
// case requires a new unlock (and captures a new lead).
func (s *Session) Touch() {
	s.unlocked = false
}

// Unlock validates the contact form, reveals the estimate, and captures the
// lead. The reveal is optimistic: a store failure is logged but does not take
// the figures back from the prospect, so the returned lead is nil in that
// case with no error.
func (s *Session) Unlock(ctx context.Context, contact Contact, lead domain.CalculatorLead) (*domain.CalculatorLead, error) {
	if err := contact.Validate(); err != nil {
		return nil, err
	}
	if s.unlocked {
		return nil, eris.New("intake: already unlocked")
	}

	s.unlocked = true

	lead.Name = contact.Name
	lead.Phone = contact.Phone
	saved, err := s.store.SaveLead(ctx, lead)
	if err != nil {
		s.logger.Warn("lead capture failed, estimate revealed anyway",
			zap.String("source", string(lead.CalculatorSource)),
			zap.Error(err))
		return nil, nil
	}

	s.logger.Info("lead captured",
		zap.String("id", saved.ID),
		zap.String("source", string(saved.CalculatorSource)))
	return saved, nil
}
