package intake

import (
	"fmt"
	"strings"

	"github.com/gregglawdallas/caseval/internal/domain"
)

// Fixed injury-type labels for the wrongful-death lead variants.
const (
	estateInjuryType      = "Wrongful Death - Estate Survival Action"
	beneficiaryInjuryType = "Wrongful Death Act (Beneficiary)"
)

// BuildMinorLead snapshots a minor-injury case into a lead record. On the
// property-damage branch the medical fields are zeroed and the property
// figure rides in the out-of-pocket slot. The headline valuation is the low
// end of the revealed range.
func BuildMinorLead(input domain.MinorCaseInput, cfg domain.StandardCalculatorConfig, est domain.MinorEstimate) domain.CalculatorLead {
	injuryType := input.BodyPartID
	for _, p := range cfg.BodyParts {
		if p.ID == input.BodyPartID {
			injuryType = p.Label.EN
			break
		}
	}

	inputs := domain.LeadInputs{InjuryType: injuryType}
	if input.BodyPartID == "none" {
		inputs.OutOfPocket = input.PropertyDamage
	} else {
		inputs.MedicalBills = input.MedicalBills
		inputs.LostWages = input.LostWages
		inputs.FutureMedical = input.FutureMedical
		inputs.OutOfPocket = input.OutOfPocket
	}

	return domain.CalculatorLead{
		CalculatorSource: domain.SourceMinor,
		Inputs:           inputs,
		Valuation:        domain.LeadValuation{Net: est.RangeLow},
		AIAudit: fmt.Sprintf("PNC reports %s case. Net estimate revealed between $%s and $%s.",
			input.BodyPartID, domain.Dollars(est.RangeLow), domain.Dollars(est.RangeHigh)),
	}
}

// BuildSeriousLead snapshots a serious-injury case into a lead record.
func BuildSeriousLead(input domain.SeriousCaseInput, cfg domain.SeriousCalculatorConfig, est domain.SeriousEstimate) domain.CalculatorLead {
	injuryType := input.InjuryTypeID
	for _, inj := range cfg.Injuries {
		if inj.ID == input.InjuryTypeID {
			injuryType = inj.Label
			if input.TierIndex != nil && *input.TierIndex < len(inj.Tiers) {
				injuryType += fmt.Sprintf(" (%s)", inj.Tiers[*input.TierIndex].Label)
			}
			break
		}
	}

	return domain.CalculatorLead{
		CalculatorSource: domain.SourceSerious,
		Inputs: domain.LeadInputs{
			InjuryType:    injuryType,
			MedicalBills:  input.MedicalBills,
			LostWages:     input.LostWages,
			FutureMedical: input.FutureMedical,
			OutOfPocket:   input.OutOfPocket,
		},
		Valuation: domain.LeadValuation{Net: domain.FloorDollars(est.NetRecovery)},
		AIAudit: fmt.Sprintf("SERIOUS INJURY LEAD. PNC reports %s. Non-Econ Factors: %s. Gross recovery estimated at $%s.",
			strings.ToUpper(input.InjuryTypeID),
			strings.Join(input.SelectedFactors, ", "),
			domain.Dollars(est.GrossRecovery)),
	}
}

// BuildEstateLead snapshots a survival-action case into a lead record.
// Funeral/medical rides in the medical-bills slot and future earnings in the
// lost-wages slot; the other two slots stay zero.
func BuildEstateLead(input domain.EstateCaseInput, est domain.DeathEstimate) domain.CalculatorLead {
	return domain.CalculatorLead{
		CalculatorSource: domain.SourceEstate,
		Inputs: domain.LeadInputs{
			InjuryType:   estateInjuryType,
			MedicalBills: input.MedicalFuneral,
			LostWages:    input.FutureEarnings,
		},
		Valuation: domain.LeadValuation{Net: domain.FloorDollars(est.Net)},
		AIAudit: fmt.Sprintf("CRITICAL ESTATE LEAD. Pre-death suffering value: $%s. Physical impairment: $%s. Net estimate revealed: $%s.",
			domain.Dollars(input.PainAndSuffering),
			domain.Dollars(input.PhysicalImpairment),
			domain.Dollars(est.Net)),
	}
}

// BuildBeneficiaryLead snapshots a beneficiary case into a lead record.
// Financial support rides in the lost-wages slot and household services in
// the out-of-pocket slot.
func BuildBeneficiaryLead(input domain.BeneficiaryCaseInput, est domain.DeathEstimate) domain.CalculatorLead {
	minorChild := "NO"
	if input.IsMinorBeneficiary {
		minorChild = "YES"
	}

	return domain.CalculatorLead{
		CalculatorSource: domain.SourceBeneficiary,
		Inputs: domain.LeadInputs{
			InjuryType:  beneficiaryInjuryType,
			LostWages:   input.FinancialSupport,
			OutOfPocket: input.HouseholdServices,
		},
		Valuation: domain.LeadValuation{Net: domain.FloorDollars(est.Net)},
		AIAudit: fmt.Sprintf("WRONGFUL DEATH BENEFICIARY LEAD. Minor Child involved: %s. Net recovery revealed: $%s.",
			minorChild, domain.Dollars(est.Net)),
	}
}
