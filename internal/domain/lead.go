package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculatorSource identifies which calculator produced a lead.
type CalculatorSource string

const (
	SourceMinor       CalculatorSource = "minor"
	SourceSerious     CalculatorSource = "serious"
	SourceEstate      CalculatorSource = "estate"
	SourceBeneficiary CalculatorSource = "beneficiary"
)

// LeadInputs is the normalized four-field inputs snapshot stored with every
// lead. Each calculator variant maps its native fields onto this shape so
// the intake inbox renders uniformly.
type LeadInputs struct {
	InjuryType    string          `json:"injuryType"`
	MedicalBills  decimal.Decimal `json:"medicalBills"`
	LostWages     decimal.Decimal `json:"lostWages"`
	FutureMedical decimal.Decimal `json:"futureMedical"`
	OutOfPocket   decimal.Decimal `json:"outOfPocket"`
}

// LeadValuation is the headline number attached to a lead.
type LeadValuation struct {
	Net decimal.Decimal `json:"net"`
}

// CalculatorLead is one captured PNC record, created once per successful
// unlock and immutable thereafter. AIAudit is a human-readable summary
// string assembled from the inputs and result at capture time.
type CalculatorLead struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Phone            string           `json:"phone"`
	Timestamp        time.Time        `json:"timestamp"`
	CalculatorSource CalculatorSource `json:"calculatorSource"`
	Inputs           LeadInputs       `json:"inputs"`
	Valuation        LeadValuation    `json:"valuation"`
	AIAudit          string           `json:"aiAudit"`
}

// ArchivedLead is a lead moved out of the active inbox. Data keeps the full
// record for recovery.
type ArchivedLead struct {
	ID         string         `json:"id"`
	Data       CalculatorLead `json:"data"`
	ArchivedAt time.Time      `json:"archivedAt"`
}
