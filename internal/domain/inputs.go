package domain

import "github.com/shopspring/decimal"

// ValidFaultPercents are the minor-injury comparative-fault stops (0-50 in
// steps of 10). The engine itself trusts its caller; entry surfaces clamp to
// these values.
var ValidFaultPercents = []int{0, 10, 20, 30, 40, 50}

// MinorCaseInput is the user-entered state of the minor-injury calculator.
// PropertyDamage is read only when BodyPartID is "none".
type MinorCaseInput struct {
	BodyPartID     string          `yaml:"body_part_id" json:"bodyPartId"`
	ConductID      string          `yaml:"conduct_id" json:"conductId"`
	MedicalBills   decimal.Decimal `yaml:"medical_bills" json:"medicalBills"`
	LostWages      decimal.Decimal `yaml:"lost_wages" json:"lostWages"`
	FutureMedical  decimal.Decimal `yaml:"future_medical" json:"futureMedical"`
	OutOfPocket    decimal.Decimal `yaml:"out_of_pocket" json:"outOfPocket"`
	PropertyDamage decimal.Decimal `yaml:"property_damage" json:"propertyDamage"`
	FaultPercent   int             `yaml:"fault_percent" json:"faultPercent"`
}

// SeriousCaseInput is the user-entered state of the serious-injury
// calculator. TierIndex nil means severity is unassessed and the baseline
// floor applies.
type SeriousCaseInput struct {
	InjuryTypeID    string          `yaml:"injury_type_id" json:"injuryTypeId"`
	TierIndex       *int            `yaml:"tier_index,omitempty" json:"tierIndex,omitempty"`
	MedicalBills    decimal.Decimal `yaml:"medical_bills" json:"medicalBills"`
	FutureMedical   decimal.Decimal `yaml:"future_medical" json:"futureMedical"`
	LostWages       decimal.Decimal `yaml:"lost_wages" json:"lostWages"`
	OutOfPocket     decimal.Decimal `yaml:"out_of_pocket" json:"outOfPocket"`
	ConductID       string          `yaml:"conduct_id" json:"conductId"`
	FaultFraction   decimal.Decimal `yaml:"fault_fraction" json:"faultFraction"`
	SelectedFactors []string        `yaml:"selected_factors" json:"selectedFactors"`
}

// ToggleTier reproduces the tier buttons' toggle semantics: selecting the
// currently selected tier deselects it and returns the case to the
// unassessed baseline state.
func (in *SeriousCaseInput) ToggleTier(idx int) {
	if in.TierIndex != nil && *in.TierIndex == idx {
		in.TierIndex = nil
		return
	}
	in.TierIndex = &idx
}

// ToggleFactor adds the factor id to the selection, or removes it when
// already selected.
func (in *SeriousCaseInput) ToggleFactor(id string) {
	for i, f := range in.SelectedFactors {
		if f == id {
			in.SelectedFactors = append(in.SelectedFactors[:i], in.SelectedFactors[i+1:]...)
			return
		}
	}
	in.SelectedFactors = append(in.SelectedFactors, id)
}

// EstateCaseInput is the user-entered state of the wrongful-death estate
// (survival action) calculator.
type EstateCaseInput struct {
	FutureEarnings     decimal.Decimal `yaml:"future_earnings" json:"futureEarnings"`
	PainAndSuffering   decimal.Decimal `yaml:"pain_and_suffering" json:"painAndSuffering"`
	PhysicalImpairment decimal.Decimal `yaml:"physical_impairment" json:"physicalImpairment"`
	MedicalFuneral     decimal.Decimal `yaml:"medical_funeral" json:"medicalFuneral"`
	ConductID          string          `yaml:"conduct_id" json:"conductId"`
	FaultFraction      decimal.Decimal `yaml:"fault_fraction" json:"faultFraction"`
}

// BeneficiaryCaseInput is the user-entered state of the wrongful-death
// beneficiary calculator. The minor-beneficiary multiplier applies only to
// the consortium and anguish terms.
type BeneficiaryCaseInput struct {
	FinancialSupport   decimal.Decimal `yaml:"financial_support" json:"financialSupport"`
	HouseholdServices  decimal.Decimal `yaml:"household_services" json:"householdServices"`
	Consortium         decimal.Decimal `yaml:"consortium" json:"consortium"`
	Anguish            decimal.Decimal `yaml:"anguish" json:"anguish"`
	IsMinorBeneficiary bool            `yaml:"is_minor_beneficiary" json:"isMinorBeneficiary"`
	ConductID          string          `yaml:"conduct_id" json:"conductId"`
	FaultFraction      decimal.Decimal `yaml:"fault_fraction" json:"faultFraction"`
}
