package domain

import "github.com/shopspring/decimal"

// MinorEstimate is the computed minor-injury valuation. RangeLow and
// RangeHigh are whole-dollar values at 90% and 110% of the computed total.
// Multiplier is the display form of the combined conduct x boost factor,
// one decimal; fixed at "1.0" on the property-damage branch.
type MinorEstimate struct {
	RangeLow    decimal.Decimal `json:"rangeLow"`
	RangeHigh   decimal.Decimal `json:"rangeHigh"`
	Economic    decimal.Decimal `json:"economic"`
	NonEconomic decimal.Decimal `json:"nonEconomic"`
	Multiplier  string          `json:"multiplier"`

	// Resolution flags: true when the requested id was not found in the
	// config tables and the first entry was substituted.
	BodyPartFellBack bool `json:"bodyPartFellBack,omitempty"`
	ConductFellBack  bool `json:"conductFellBack,omitempty"`
}

// SeriousEstimate is the computed serious-injury valuation with its full
// intermediate breakdown.
type SeriousEstimate struct {
	ED                decimal.Decimal `json:"ed"`
	NED               decimal.Decimal `json:"ned"`
	GrossRecovery     decimal.Decimal `json:"grossRecovery"`
	NetRecovery       decimal.Decimal `json:"netRecovery"`
	EDActual          decimal.Decimal `json:"edActual"`
	Anchor            decimal.Decimal `json:"edFloor"`
	TierWeight        decimal.Decimal `json:"tierWeight"`
	NonEconMultiplier decimal.Decimal `json:"nonEconMultiplier"`
	ConductMultiplier decimal.Decimal `json:"conductMult"`

	InjuryFellBack  bool `json:"injuryFellBack,omitempty"`
	ConductFellBack bool `json:"conductFellBack,omitempty"`
}

// DeathEstimate is the computed valuation for either wrongful-death variant.
type DeathEstimate struct {
	EconTotal    decimal.Decimal `json:"econTotal"`
	NonEconTotal decimal.Decimal `json:"nonEconTotal"`
	Gross        decimal.Decimal `json:"gross"`
	Net          decimal.Decimal `json:"net"`

	ConductFellBack bool `json:"conductFellBack,omitempty"`
}
