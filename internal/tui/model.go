// Package tui is an interactive minor-injury calculator for the terminal.
// Figures stay masked until the visitor unlocks them with contact details,
// mirroring the web gate, and any parameter change relocks the view.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/gregglawdallas/caseval/internal/domain"
	"github.com/gregglawdallas/caseval/internal/intake"
	"github.com/gregglawdallas/caseval/internal/store"
	"github.com/gregglawdallas/caseval/internal/tui/components"
	"github.com/gregglawdallas/caseval/internal/valuation"
)

// Parameter rows in focus order.
const (
	rowBodyPart = iota
	rowConduct
	rowMedical
	rowLostWages
	rowFutureMedical
	rowOutOfPocket
	rowProperty
	rowFault
	rowCount
)

// Contact form rows.
const (
	contactName = iota
	contactPhone
	contactAgree
	contactRows
)

// Model holds the calculator state for the Bubble Tea update loop.
type Model struct {
	store   store.Store
	session *intake.Session
	logger  *zap.Logger

	cfg   domain.StandardCalculatorConfig
	ready bool

	mode  mode
	focus int

	bodyPart int
	conduct  int
	faultIdx int
	sliders  []*components.AmountSlider

	estimate    domain.MinorEstimate
	estimateErr error

	contactFocus int
	nameInput    textinput.Model
	phoneInput   textinput.Model
	agreed       bool

	lead *domain.CalculatorLead
	err  error

	width  int
	height int
}

// NewModel creates the calculator model backed by the given store.
func NewModel(st store.Store, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	name := textinput.New()
	name.Placeholder = "Full name"
	name.CharLimit = 80
	name.Focus()

	phone := textinput.New()
	phone.Placeholder = "(214) 555-0100"
	phone.CharLimit = 20

	return Model{
		store:   st,
		session: intake.NewSession(st, logger),
		logger:  logger,
		sliders: []*components.AmountSlider{
			components.NewAmountSlider("Medical bills", decimal.NewFromInt(250000), decimal.NewFromInt(500)),
			components.NewAmountSlider("Lost wages", decimal.NewFromInt(100000), decimal.NewFromInt(500)),
			components.NewAmountSlider("Future medical", decimal.NewFromInt(250000), decimal.NewFromInt(1000)),
			components.NewAmountSlider("Out of pocket", decimal.NewFromInt(25000), decimal.NewFromInt(100)),
			components.NewAmountSlider("Property damage", decimal.NewFromInt(50000), decimal.NewFromInt(250)),
		},
		nameInput:  name,
		phoneInput: phone,
		width:      80,
		height:     24,
	}
}

// Init loads the calculator tables (required by tea.Model).
func (m Model) Init() tea.Cmd {
	return loadCatalogCmd(m.store)
}

func loadCatalogCmd(st store.Store) tea.Cmd {
	return func() tea.Msg {
		cfg, err := st.GetStandardConfig(context.Background())
		if err != nil {
			return errMsg{Err: err}
		}
		return catalogLoadedMsg{Config: cfg}
	}
}

// input assembles the calculator input from the current selections.
func (m Model) input() domain.MinorCaseInput {
	in := domain.MinorCaseInput{
		MedicalBills:   m.sliders[0].Value,
		LostWages:      m.sliders[1].Value,
		FutureMedical:  m.sliders[2].Value,
		OutOfPocket:    m.sliders[3].Value,
		PropertyDamage: m.sliders[4].Value,
		FaultPercent:   domain.ValidFaultPercents[m.faultIdx],
	}
	if len(m.cfg.BodyParts) > 0 {
		in.BodyPartID = m.cfg.BodyParts[m.bodyPart].ID
	}
	if len(m.cfg.ConductTypes) > 0 {
		in.ConductID = m.cfg.ConductTypes[m.conduct].ID
	}
	return in
}

// recompute refreshes the estimate for the current selections.
func (m *Model) recompute() {
	if !m.ready {
		return
	}
	m.estimate, m.estimateErr = valuation.ComputeMinor(m.input(), m.cfg)
}

// touch relocks the gate after a parameter change and recomputes.
func (m *Model) touch() {
	m.session.Touch()
	m.lead = nil
	m.err = nil
	m.recompute()
}

// Unlocked reports whether figures are currently revealed.
func (m Model) Unlocked() bool {
	return m.session.Unlocked()
}

// unlockCmd validates the contact, captures the lead, and reveals figures.
func (m Model) unlockCmd() tea.Cmd {
	contact := intake.Contact{
		Name:   m.nameInput.Value(),
		Phone:  m.phoneInput.Value(),
		Agreed: m.agreed,
	}
	input := m.input()
	est := m.estimate
	cfg := m.cfg
	sess := m.session

	return func() tea.Msg {
		lead := intake.BuildMinorLead(input, cfg, est)
		saved, err := sess.Unlock(context.Background(), contact, lead)
		if err != nil {
			return errMsg{Err: err}
		}
		return leadSavedMsg{Lead: saved}
	}
}
