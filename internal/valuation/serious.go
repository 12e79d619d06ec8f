package valuation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gregglawdallas/caseval/internal/domain"
)

// ComputeSerious calculates the serious-injury estimate.
//
// Economic damages are anchored: when a severity tier is selected its edFloor
// is the minimum; when severity is unassessed (TierIndex nil) the anchor is
// 40% of the first tier's floor. The anchor keeps a catastrophic-injury case
// with low current medical entries from producing an implausibly small
// top-line figure.
func ComputeSerious(input domain.SeriousCaseInput, config domain.SeriousCalculatorConfig) (domain.SeriousEstimate, error) {
	injury, injuryFellBack, err := resolveInjury(config.Injuries, input.InjuryTypeID)
	if err != nil {
		return domain.SeriousEstimate{}, err
	}
	if len(injury.Tiers) == 0 {
		return domain.SeriousEstimate{}, fmt.Errorf("injury %s has no tiers", injury.ID)
	}
	conduct, conductFellBack, err := resolveLiability(domain.SeriousLiabilityLevels(), input.ConductID)
	if err != nil {
		return domain.SeriousEstimate{}, err
	}

	baselineFloor := injury.Tiers[0].EDFloor.Mul(baselineCut)

	anchor := baselineFloor
	tierWeight := one
	if input.TierIndex != nil {
		idx := *input.TierIndex
		if idx < 0 || idx >= len(injury.Tiers) {
			return domain.SeriousEstimate{}, fmt.Errorf("tier index %d out of range for injury %s", idx, injury.ID)
		}
		anchor = injury.Tiers[idx].EDFloor
		tierWeight = injury.Tiers[idx].MinWeight
	}

	edActual := input.MedicalBills.Add(input.FutureMedical).Add(input.LostWages).Add(input.OutOfPocket)
	ed := decimal.Max(edActual, anchor)

	nonEconMultiplier := tierWeight.Add(quarter.Mul(decimal.NewFromInt(int64(len(input.SelectedFactors)))))
	ned := ed.Mul(nonEconMultiplier)

	grossRecovery := ed.Add(ned).Mul(conduct.Multiplier)
	netRecovery := grossRecovery.Mul(one.Sub(input.FaultFraction))

	return domain.SeriousEstimate{
		ED:                ed,
		NED:               ned,
		GrossRecovery:     grossRecovery,
		NetRecovery:       netRecovery,
		EDActual:          edActual,
		Anchor:            anchor,
		TierWeight:        tierWeight,
		NonEconMultiplier: nonEconMultiplier,
		ConductMultiplier: conduct.Multiplier,
		InjuryFellBack:    injuryFellBack,
		ConductFellBack:   conductFellBack,
	}, nil
}
