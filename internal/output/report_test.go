package output

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregglawdallas/caseval/internal/domain"
	"github.com/gregglawdallas/caseval/internal/valuation"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$3,630,000", FormatCurrency(decimal.NewFromInt(3630000)))
	assert.Equal(t, "$0", FormatCurrency(decimal.Zero))
}

func TestMinorReportUnlocked(t *testing.T) {
	input := domain.MinorCaseInput{
		BodyPartID:   "sprains",
		ConductID:    "standard",
		MedicalBills: decimal.NewFromInt(5000),
		LostWages:    decimal.NewFromInt(500),
	}
	est, err := valuation.ComputeMinor(input, domain.DefaultStandardConfig())
	require.NoError(t, err)

	report := NewReportGenerator().MinorReport(input, est)

	assert.Contains(t, report, "MINOR INJURY SETTLEMENT ESTIMATE")
	assert.Contains(t, report, "$5,500")
	assert.Contains(t, report, "2.8x")
	assert.Contains(t, report, "$13,612 to $16,637")
	assert.NotContains(t, report, "[locked]")
	assert.NotContains(t, report, "NOTE:")
}

func TestMinorReportLockedMasksFigures(t *testing.T) {
	input := domain.MinorCaseInput{
		BodyPartID:   "sprains",
		ConductID:    "standard",
		MedicalBills: decimal.NewFromInt(5000),
	}
	est, err := valuation.ComputeMinor(input, domain.DefaultStandardConfig())
	require.NoError(t, err)

	rg := &ReportGenerator{Locked: true}
	report := rg.MinorReport(input, est)

	assert.Contains(t, report, "[locked]")
	assert.NotContains(t, report, "$5,000")
	assert.NotContains(t, report, "$13,")
	assert.Contains(t, report, "x", "the multiplier stays visible even when locked")
}

func TestMinorReportPropertyBranch(t *testing.T) {
	input := domain.MinorCaseInput{
		BodyPartID:     "none",
		ConductID:      "standard",
		PropertyDamage: decimal.NewFromInt(10000),
	}
	est, err := valuation.ComputeMinor(input, domain.DefaultStandardConfig())
	require.NoError(t, err)

	report := NewReportGenerator().MinorReport(input, est)
	assert.Contains(t, report, "Property damage only")
}

func TestMinorReportFallbackNote(t *testing.T) {
	input := domain.MinorCaseInput{
		BodyPartID:   "tentacle",
		ConductID:    "standard",
		MedicalBills: decimal.NewFromInt(1000),
	}
	est, err := valuation.ComputeMinor(input, domain.DefaultStandardConfig())
	require.NoError(t, err)

	report := NewReportGenerator().MinorReport(input, est)
	assert.Contains(t, report, "unknown injury category")
}

func TestSeriousReport(t *testing.T) {
	tier := 1
	input := domain.SeriousCaseInput{
		InjuryTypeID:    "tbi",
		TierIndex:       &tier,
		ConductID:       "standard",
		MedicalBills:    decimal.NewFromInt(400000),
		LostWages:       decimal.NewFromInt(150000),
		FutureMedical:   decimal.NewFromInt(50000),
		OutOfPocket:     decimal.NewFromInt(5000),
		SelectedFactors: []string{"pain", "quality", "disfigure", "impair"},
	}
	est, err := valuation.ComputeSerious(input, domain.DefaultSeriousConfig())
	require.NoError(t, err)

	report := NewReportGenerator().SeriousReport(input, est)

	assert.Contains(t, report, "SERIOUS INJURY SETTLEMENT ESTIMATE")
	assert.Contains(t, report, "Severity tier:         2")
	assert.Contains(t, report, "$605,000")
	assert.Contains(t, report, "5.00x")
	assert.Contains(t, report, "$3,630,000")
}

func TestSeriousReportUnassessed(t *testing.T) {
	input := domain.SeriousCaseInput{
		InjuryTypeID: "burns",
		ConductID:    "standard",
	}
	est, err := valuation.ComputeSerious(input, domain.DefaultSeriousConfig())
	require.NoError(t, err)

	report := NewReportGenerator().SeriousReport(input, est)
	assert.Contains(t, report, "unassessed (baseline anchor)")
}

func TestDeathReport(t *testing.T) {
	input := domain.EstateCaseInput{
		FutureEarnings:     decimal.NewFromInt(950000),
		PainAndSuffering:   decimal.NewFromInt(750000),
		PhysicalImpairment: decimal.NewFromInt(250000),
		MedicalFuneral:     decimal.NewFromInt(45000),
		ConductID:          "standard",
	}
	est, err := valuation.ComputeEstate(input)
	require.NoError(t, err)

	report := NewReportGenerator().DeathReport("ESTATE SURVIVAL ACTION", est)

	assert.Contains(t, report, "ESTATE SURVIVAL ACTION VALUATION")
	assert.Contains(t, report, "$995,000")
	assert.Contains(t, report, "$1,995,000")
}

func TestLeadsCSV(t *testing.T) {
	leads := []domain.CalculatorLead{
		{
			ID:               "lead-1",
			Name:             "Ana Ruiz",
			Phone:            "(214) 555-0100",
			CalculatorSource: domain.SourceSerious,
			Inputs: domain.LeadInputs{
				InjuryType:   "Traumatic Brain (TBI) (Moderate)",
				MedicalBills: decimal.NewFromInt(400000),
			},
			Valuation: domain.LeadValuation{Net: decimal.NewFromInt(3630000)},
			AIAudit:   "SERIOUS INJURY LEAD. PNC reports TBI.",
		},
	}

	data, err := LeadsCSV(leads)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID,Timestamp,Name,Phone,Source"))
	assert.Contains(t, lines[1], "Ana Ruiz")
	assert.Contains(t, lines[1], "serious")
	assert.Contains(t, lines[1], "3630000.00")
}

func TestLeadsCSVEmpty(t *testing.T) {
	data, err := LeadsCSV(nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 1, "header only")
}
