// Package valuation implements the settlement estimators: minor-injury,
// serious-injury, and the two wrongful-death variants. Every compute
// function is pure; it takes a case input and a configuration snapshot and
// returns a breakdown. Configuration is injected by the caller, never read
// from a store inside the formulas.
package valuation

import (
	"fmt"

	"github.com/gregglawdallas/caseval/internal/domain"
)

// Unknown ids never fail a computation: they resolve to the first entry of
// the corresponding table so a stale reference degrades to some number
// instead of blocking the funnel. The resolvers report the substitution so
// callers and tests can detect drift.

func resolveBodyPart(parts []domain.BodyPartCategory, id string) (domain.BodyPartCategory, bool, error) {
	if len(parts) == 0 {
		return domain.BodyPartCategory{}, false, fmt.Errorf("body part table is empty")
	}
	for _, p := range parts {
		if p.ID == id {
			return p, false, nil
		}
	}
	return parts[0], true, nil
}

func resolveConductType(types []domain.ConductType, id string) (domain.ConductType, bool, error) {
	if len(types) == 0 {
		return domain.ConductType{}, false, fmt.Errorf("conduct type table is empty")
	}
	for _, c := range types {
		if c.ID == id {
			return c, false, nil
		}
	}
	return types[0], true, nil
}

func resolveInjury(injuries []domain.SeriousInjuryType, id string) (domain.SeriousInjuryType, bool, error) {
	if len(injuries) == 0 {
		return domain.SeriousInjuryType{}, false, fmt.Errorf("injury table is empty")
	}
	for _, inj := range injuries {
		if inj.ID == id {
			return inj, false, nil
		}
	}
	return injuries[0], true, nil
}

func resolveLiability(levels []domain.LiabilityLevel, id string) (domain.LiabilityLevel, bool, error) {
	if len(levels) == 0 {
		return domain.LiabilityLevel{}, false, fmt.Errorf("liability table is empty")
	}
	for _, l := range levels {
		if l.ID == id {
			return l, false, nil
		}
	}
	return levels[0], true, nil
}
