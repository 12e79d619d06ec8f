package tui

import "github.com/gregglawdallas/caseval/internal/domain"

// mode selects which panel owns the keyboard.
type mode int

const (
	modeAdjust mode = iota
	modeContact
)

// catalogLoadedMsg delivers the minor-injury tables at startup.
type catalogLoadedMsg struct {
	Config domain.StandardCalculatorConfig
}

// leadSavedMsg reports the outcome of an unlock attempt. Lead is nil when
// the reveal proceeded without a stored lead.
type leadSavedMsg struct {
	Lead *domain.CalculatorLead
}

// errMsg surfaces a failure to the status line.
type errMsg struct {
	Err error
}
