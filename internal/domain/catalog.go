package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LocalizedText carries the English and Spanish renderings of a user-facing string.
type LocalizedText struct {
	EN string `yaml:"en" json:"en"`
	ES string `yaml:"es" json:"es"`
}

// BodyPartCategory is an injury category for the minor-injury calculator.
// Boost is a non-negative multiplier factor applied on top of the conduct
// multiplier; the "none" category (boost 0) routes to the pure
// property-damage branch.
type BodyPartCategory struct {
	ID          string          `yaml:"id" json:"id"`
	Label       LocalizedText   `yaml:"label" json:"label"`
	Description LocalizedText   `yaml:"description" json:"description"`
	Boost       decimal.Decimal `yaml:"boost" json:"boost"`
}

// ConductType is a defendant-culpability level for the minor-injury
// calculator. Multiplier reflects the negligence standard (ordinary, gross,
// intentional) and is tuned independently of the serious and wrongful-death
// liability scales.
type ConductType struct {
	ID          string          `yaml:"id" json:"id"`
	Label       LocalizedText   `yaml:"label" json:"label"`
	Description LocalizedText   `yaml:"description" json:"description"`
	Multiplier  decimal.Decimal `yaml:"multiplier" json:"multiplier"`
}

// StandardCalculatorConfig holds the admin-editable tables behind the
// minor-injury calculator.
type StandardCalculatorConfig struct {
	BodyParts    []BodyPartCategory `yaml:"body_parts" json:"bodyParts"`
	ConductTypes []ConductType      `yaml:"conduct_types" json:"conductTypes"`
}

// SeriousTier is one severity bracket of a serious-injury category. EDFloor
// is the economic anchor for the bracket; MinWeight is its non-economic
// weight factor.
type SeriousTier struct {
	Label     string          `yaml:"label" json:"label"`
	EDFloor   decimal.Decimal `yaml:"ed_floor" json:"edFloor"`
	MinWeight decimal.Decimal `yaml:"min_weight" json:"minWeight"`
	Desc      string          `yaml:"desc" json:"desc"`
}

// SeriousInjuryType is a serious-injury category with exactly three ordered
// severity tiers. EDFloor and MinWeight are non-decreasing across the tier
// ordering by authoring convention; the engine does not enforce it.
type SeriousInjuryType struct {
	ID      string        `yaml:"id" json:"id"`
	Label   string        `yaml:"label" json:"label"`
	Summary string        `yaml:"summary" json:"summary"`
	Tiers   []SeriousTier `yaml:"tiers" json:"tiers"`
}

// SeriousCalculatorConfig holds the admin-editable injury catalog behind the
// serious-injury calculator.
type SeriousCalculatorConfig struct {
	Injuries []SeriousInjuryType `yaml:"injuries" json:"injuries"`
}

// LiabilityLevel is a conduct-multiplier entry for the serious and
// wrongful-death calculators. These scales share label sets with the
// minor-injury ConductTypes but carry different multipliers; they are kept
// as separate tables on purpose.
type LiabilityLevel struct {
	ID         string          `yaml:"id" json:"id"`
	Label      string          `yaml:"label" json:"label"`
	Multiplier decimal.Decimal `yaml:"multiplier" json:"multiplier"`
	Desc       string          `yaml:"desc" json:"desc"`
}

// NonEconFactor is one entry of the fixed six-item non-economic damages
// catalog for the serious-injury calculator.
type NonEconFactor struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
}

// WrongfulDeathConfig holds the admin-tunable wrongful-death parameters.
// The death calculators currently read only the fixed liability table; these
// values are stored and editable for tuning parity with the admin screens.
type WrongfulDeathConfig struct {
	PecuniaryFloor       decimal.Decimal `yaml:"pecuniary_floor" json:"pecuniaryFloor"`
	ConsortiumMultiplier decimal.Decimal `yaml:"consortium_multiplier,omitempty" json:"consortiumMultiplier,omitempty"`
	AnguishWeight        decimal.Decimal `yaml:"anguish_weight,omitempty" json:"anguishWeight,omitempty"`
	ServiceValueYearly   decimal.Decimal `yaml:"service_value_yearly,omitempty" json:"serviceValueYearly,omitempty"`
}

// SettlementBenchmark is a comparable verdict or settlement shown alongside a
// completed serious-injury estimate, keyed by injury id.
type SettlementBenchmark struct {
	ID        string `yaml:"id" json:"id"`
	InjuryID  string `yaml:"injury_id" json:"injuryId"`
	Text      string `yaml:"text" json:"text"`
	DateAdded string `yaml:"date_added" json:"dateAdded"`
	IsDemo    bool   `yaml:"is_demo,omitempty" json:"isDemo,omitempty"`
}

// Validate checks the minor-injury config tables.
func (c *StandardCalculatorConfig) Validate() error {
	if len(c.BodyParts) == 0 {
		return fmt.Errorf("at least one body part category is required")
	}
	if len(c.ConductTypes) == 0 {
		return fmt.Errorf("at least one conduct type is required")
	}
	for i, p := range c.BodyParts {
		if p.ID == "" {
			return fmt.Errorf("body part %d: id is required", i)
		}
		if p.Boost.LessThan(decimal.Zero) {
			return fmt.Errorf("body part %s: boost cannot be negative", p.ID)
		}
	}
	for i, ct := range c.ConductTypes {
		if ct.ID == "" {
			return fmt.Errorf("conduct type %d: id is required", i)
		}
		if ct.Multiplier.LessThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("conduct type %s: multiplier must be at least 1.0", ct.ID)
		}
	}
	return nil
}

// Validate checks the serious-injury catalog. Every injury type must carry
// exactly three tiers.
func (c *SeriousCalculatorConfig) Validate() error {
	if len(c.Injuries) == 0 {
		return fmt.Errorf("at least one injury type is required")
	}
	for i, inj := range c.Injuries {
		if inj.ID == "" {
			return fmt.Errorf("injury %d: id is required", i)
		}
		if len(inj.Tiers) != 3 {
			return fmt.Errorf("injury %s: exactly 3 tiers required, got %d", inj.ID, len(inj.Tiers))
		}
		for j, tier := range inj.Tiers {
			if tier.EDFloor.LessThan(decimal.Zero) {
				return fmt.Errorf("injury %s tier %d: ed floor cannot be negative", inj.ID, j)
			}
			if tier.MinWeight.LessThan(decimal.Zero) {
				return fmt.Errorf("injury %s tier %d: min weight cannot be negative", inj.ID, j)
			}
		}
	}
	return nil
}

// TierOrderingWarnings reports injury types whose tiers break the
// non-decreasing edFloor/minWeight authoring convention. Advisory only.
func (c *SeriousCalculatorConfig) TierOrderingWarnings() []string {
	var warnings []string
	for _, inj := range c.Injuries {
		for j := 1; j < len(inj.Tiers); j++ {
			if inj.Tiers[j].EDFloor.LessThan(inj.Tiers[j-1].EDFloor) {
				warnings = append(warnings, fmt.Sprintf("injury %s: tier %q ed floor below preceding tier", inj.ID, inj.Tiers[j].Label))
			}
			if inj.Tiers[j].MinWeight.LessThan(inj.Tiers[j-1].MinWeight) {
				warnings = append(warnings, fmt.Sprintf("injury %s: tier %q min weight below preceding tier", inj.ID, inj.Tiers[j].Label))
			}
		}
	}
	return warnings
}
