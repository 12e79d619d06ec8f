package valuation

import (
	"github.com/shopspring/decimal"

	"github.com/gregglawdallas/caseval/internal/domain"
)

var (
	one        = decimal.NewFromInt(1)
	hundred    = decimal.NewFromInt(100)
	rangeLow   = decimal.NewFromFloat(0.90)
	rangeHigh  = decimal.NewFromFloat(1.10)
	quarter    = decimal.NewFromFloat(0.25)
	baselineCut = decimal.NewFromFloat(0.4)
)

// ComputeMinor calculates the minor-injury estimate. With BodyPartID "none"
/// the claim is pure property damage: no multiplier and no non-economic
// component. Otherwise the economic base is scaled by conduct.multiplier x
// bodyPart.boost, then reduced by the comparative-fault percentage. The
// displayed range spans 90%-110% of the computed total, floored to whole
// dollars.
func ComputeMinor(input domain.MinorCaseInput, config domain.StandardCalculatorConfig) (domain.MinorEstimate, error) {
	part, partFellBack, err := resolveBodyPart(config.BodyParts, input.BodyPartID)
	if err != nil {
		return domain.MinorEstimate{}, err
	}
	conduct, conductFellBack, err := resolveConductType(config.ConductTypes, input.ConductID)
	if err != nil {
		return domain.MinorEstimate{}, err
	}

	faultKeep := one.Sub(decimal.NewFromInt(int64(input.FaultPercent)).Div(hundred))

	var (
		total      decimal.Decimal
		econBase   decimal.Decimal
		nonEcon    decimal.Decimal
		multiplier string
	)

	if input.BodyPartID == "none" {
		econBase = input.PropertyDamage
		nonEcon = decimal.Zero
		total = econBase.Mul(faultKeep)
		multiplier = "1.0"
	} else {
		econBase = input.MedicalBills.Add(input.LostWages).Add(input.FutureMedical).Add(input.OutOfPocket)
		boost := part.Boost
		if boost.IsZero() {
			boost = one // zero boost is treated as 1 outside the "none" branch
		}
		m := conduct.Multiplier.Mul(boost)
		multiplier = m.StringFixed(1)
		total = econBase.Mul(m).Mul(faultKeep)
		nonEcon = econBase.Mul(m.Sub(one)).Floor()
	}

	return domain.MinorEstimate{
		RangeLow:         total.Mul(rangeLow).Floor(),
		RangeHigh:        total.Mul(rangeHigh).Floor(),
		Economic:         econBase,
		NonEconomic:      nonEcon,
		Multiplier:       multiplier,
		BodyPartFellBack: partFellBack,
		ConductFellBack:  conductFellBack,
	}, nil
}
