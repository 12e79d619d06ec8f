package valuation

import (
	"github.com/shopspring/decimal"

	"github.com/gregglawdallas/caseval/internal/domain"
)

var minorBeneficiaryMultiplier = decimal.NewFromFloat(1.5)

// ComputeEstate calculates the wrongful-death survival-action (estate)
// valuation. Unlike the serious-injury estimator there is no economic
// anchor: death-claim inputs are taken as entered.
func ComputeEstate(input domain.EstateCaseInput) (domain.DeathEstimate, error) {
	conduct, fellBack, err := resolveLiability(domain.DeathLiabilityLevels(), input.ConductID)
	if err != nil {
		return domain.DeathEstimate{}, err
	}

	econTotal := input.FutureEarnings.Add(input.MedicalFuneral)
	nonEconTotal := input.PainAndSuffering.Add(input.PhysicalImpairment)
	gross := econTotal.Add(nonEconTotal).Mul(conduct.Multiplier)
	net := gross.Mul(one.Sub(input.FaultFraction))

	return domain.DeathEstimate{
		EconTotal:       econTotal,
		NonEconTotal:    nonEconTotal,
		Gross:           gross,
		Net:             net,
		ConductFellBack: fellBack,
	}, nil
}

// ComputeBeneficiary calculates the wrongful-death beneficiary valuation.
// The 1.5x minor-beneficiary multiplier applies only to the consortium and
// anguish terms, never to financial support or household services.
func ComputeBeneficiary(input domain.BeneficiaryCaseInput) (domain.DeathEstimate, error) {
	conduct, fellBack, err := resolveLiability(domain.DeathLiabilityLevels(), input.ConductID)
	if err != nil {
		return domain.DeathEstimate{}, err
	}

	minorMult := one
	if input.IsMinorBeneficiary {
		minorMult = minorBeneficiaryMultiplier
	}

	econTotal := input.FinancialSupport.Add(input.HouseholdServices)
	nonEconTotal := input.Consortium.Add(input.Anguish).Mul(minorMult)
	gross := econTotal.Add(nonEconTotal).Mul(conduct.Multiplier)
	net := gross.Mul(one.Sub(input.FaultFraction))

	return domain.DeathEstimate{
		EconTotal:       econTotal,
		NonEconTotal:    nonEconTotal,
		Gross:           gross,
		Net:             net,
		ConductFellBack: fellBack,
	}, nil
}
