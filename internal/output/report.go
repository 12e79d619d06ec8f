// Package output renders estimates and lead exports for the console.
package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gregglawdallas/caseval/internal/domain"
)

const lockedFigure = "$ [locked]"

// FormatCurrency formats a decimal as whole dollars with a leading $.
func FormatCurrency(d decimal.Decimal) string {
	return "$" + domain.Dollars(d)
}

// ReportGenerator renders calculator results.
type ReportGenerator struct {
	// Locked masks every dollar figure, mirroring the gated web view.
	Locked bool
}

// NewReportGenerator creates a report generator for unlocked output.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

func (rg *ReportGenerator) money(d decimal.Decimal) string {
	if rg.Locked {
		return lockedFigure
	}
	return FormatCurrency(d)
}

// MinorReport renders the minor-injury estimate breakdown.
func (rg *ReportGenerator) MinorReport(input domain.MinorCaseInput, est domain.MinorEstimate) string {
	var b strings.Builder

	fmt.Fprintln(&b, "=================================================")
	fmt.Fprintln(&b, "MINOR INJURY SETTLEMENT ESTIMATE")
	fmt.Fprintln(&b, "=================================================")
	if input.BodyPartID == "none" {
		fmt.Fprintln(&b, "Claim type:            Property damage only")
	} else {
		fmt.Fprintf(&b, "Injury category:       %s\n", input.BodyPartID)
	}
	fmt.Fprintf(&b, "Economic damages:      %s\n", rg.money(est.Economic))
	fmt.Fprintf(&b, "Non-economic damages:  %s\n", rg.money(est.NonEconomic))
	fmt.Fprintf(&b, "Applied multiplier:    %sx\n", est.Multiplier)
	if input.FaultPercent > 0 {
		fmt.Fprintf(&b, "Comparative fault:     -%d%%\n", input.FaultPercent)
	}
	fmt.Fprintln(&b, strings.Repeat("-", 49))
	fmt.Fprintf(&b, "Estimated range:       %s to %s\n", rg.money(est.RangeLow), rg.money(est.RangeHigh))

	if est.BodyPartFellBack {
		fmt.Fprintln(&b, "NOTE: unknown injury category, first catalog entry substituted")
	}
	if est.ConductFellBack {
		fmt.Fprintln(&b, "NOTE: unknown conduct type, first catalog entry substituted")
	}
	return b.String()
}

// SeriousReport renders the serious-injury estimate breakdown.
func (rg *ReportGenerator) SeriousReport(input domain.SeriousCaseInput, est domain.SeriousEstimate) string {
	var b strings.Builder

	fmt.Fprintln(&b, "=================================================")
	fmt.Fprintln(&b, "SERIOUS INJURY SETTLEMENT ESTIMATE")
	fmt.Fprintln(&b, "=================================================")
	fmt.Fprintf(&b, "Injury type:           %s\n", input.InjuryTypeID)
	if input.TierIndex == nil {
		fmt.Fprintln(&b, "Severity:              unassessed (baseline anchor)")
	} else {
		fmt.Fprintf(&b, "Severity tier:         %d\n", *input.TierIndex+1)
	}
	fmt.Fprintf(&b, "Economic (entered):    %s\n", rg.money(est.EDActual))
	fmt.Fprintf(&b, "Economic (anchored):   %s\n", rg.money(est.ED))
	fmt.Fprintf(&b, "Non-economic factor:   %sx\n", est.NonEconMultiplier.StringFixed(2))
	fmt.Fprintf(&b, "Non-economic damages:  %s\n", rg.money(est.NED))
	fmt.Fprintf(&b, "Conduct multiplier:    %sx\n", est.ConductMultiplier.StringFixed(1))
	fmt.Fprintln(&b, strings.Repeat("-", 49))
	fmt.Fprintf(&b, "Gross recovery:        %s\n", rg.money(est.GrossRecovery))
	fmt.Fprintf(&b, "Net recovery:          %s\n", rg.money(est.NetRecovery))

	if est.InjuryFellBack {
		fmt.Fprintln(&b, "NOTE: unknown injury type, first catalog entry substituted")
	}
	if est.ConductFellBack {
		fmt.Fprintln(&b, "NOTE: unknown conduct type, first catalog entry substituted")
	}
	return b.String()
}

// DeathReport renders either wrongful-death estimate breakdown. Title is the
// variant heading ("ESTATE SURVIVAL ACTION" or "WRONGFUL DEATH BENEFICIARY").
func (rg *ReportGenerator) DeathReport(title string, est domain.DeathEstimate) string {
	var b strings.Builder

	fmt.Fprintln(&b, "=================================================")
	fmt.Fprintf(&b, "%s VALUATION\n", title)
	fmt.Fprintln(&b, "=================================================")
	fmt.Fprintf(&b, "Economic damages:      %s\n", rg.money(est.EconTotal))
	fmt.Fprintf(&b, "Non-economic damages:  %s\n", rg.money(est.NonEconTotal))
	fmt.Fprintln(&b, strings.Repeat("-", 49))
	fmt.Fprintf(&b, "Gross recovery:        %s\n", rg.money(est.Gross))
	fmt.Fprintf(&b, "Net recovery:          %s\n", rg.money(est.Net))

	if est.ConductFellBack {
		fmt.Fprintln(&b, "NOTE: unknown conduct type, first catalog entry substituted")
	}
	return b.String()
}
