package valuation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregglawdallas/caseval/internal/domain"
)

func TestComputeEstateScenario(t *testing.T) {
	input := domain.EstateCaseInput{
		FutureEarnings:     decimal.NewFromInt(950000),
		PainAndSuffering:   decimal.NewFromInt(750000),
		PhysicalImpairment: decimal.NewFromInt(250000),
		MedicalFuneral:     decimal.NewFromInt(45000),
		ConductID:          "standard",
	}

	est, err := ComputeEstate(input)
	require.NoError(t, err)

	assert.True(t, est.EconTotal.Equal(decimal.NewFromInt(995000)),
		"Expected economic 995000, got %s", est.EconTotal)
	assert.True(t, est.NonEconTotal.Equal(decimal.NewFromInt(1000000)),
		"Expected non-economic 1000000, got %s", est.NonEconTotal)
	assert.True(t, est.Gross.Equal(decimal.NewFromInt(1995000)),
		"Expected gross 1995000, got %s", est.Gross)
	assert.True(t, est.Net.Equal(est.Gross))
	assert.False(t, est.ConductFellBack)
}

func TestComputeEstateConductAndFault(t *testing.T) {
	tests := []struct {
		name      string
		conductID string
		fault     float64
		expected  int64
	}{
		{
			name:      "Gross negligence uplift",
			conductID: "gross",
			fault:     0,
			expected:  150000, // (60000+40000) * 1.5
		},
		{
			name:      "Intentional conduct with shared fault",
			conductID: "intentional",
			fault:     0.5,
			expected:  100000, // (60000+40000) * 2.0 * 0.5
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := domain.EstateCaseInput{
				FutureEarnings:   decimal.NewFromInt(60000),
				PainAndSuffering: decimal.NewFromInt(40000),
				ConductID:        tt.conductID,
				FaultFraction:    decimal.NewFromFloat(tt.fault),
			}

			est, err := ComputeEstate(input)
			require.NoError(t, err)
			assert.True(t, est.Net.Equal(decimal.NewFromInt(tt.expected)),
				"Expected net %d, got %s", tt.expected, est.Net)
		})
	}
}

func TestComputeBeneficiaryMinorMultiplier(t *testing.T) {
	input := domain.BeneficiaryCaseInput{
		FinancialSupport:  decimal.NewFromInt(300000),
		HouseholdServices: decimal.NewFromInt(50000),
		Consortium:        decimal.NewFromInt(200000),
		Anguish:           decimal.NewFromInt(100000),
		ConductID:         "standard",
	}

	adult, err := ComputeBeneficiary(input)
	require.NoError(t, err)
	assert.True(t, adult.EconTotal.Equal(decimal.NewFromInt(350000)))
	assert.True(t, adult.NonEconTotal.Equal(decimal.NewFromInt(300000)))
	assert.True(t, adult.Net.Equal(decimal.NewFromInt(650000)))

	input.IsMinorBeneficiary = true
	minor, err := ComputeBeneficiary(input)
	require.NoError(t, err)

	// 1.5x applies to consortium+anguish only, never to the economic terms.
	assert.True(t, minor.EconTotal.Equal(adult.EconTotal),
		"minor status must not change economic damages")
	assert.True(t, minor.NonEconTotal.Equal(decimal.NewFromInt(450000)),
		"Expected non-economic 450000, got %s", minor.NonEconTotal)
	assert.True(t, minor.Net.Equal(decimal.NewFromInt(800000)))
}

func TestComputeBeneficiaryUnknownConductFallsBack(t *testing.T) {
	input := domain.BeneficiaryCaseInput{
		FinancialSupport: decimal.NewFromInt(1000),
		ConductID:        "cosmic",
	}

	est, err := ComputeBeneficiary(input)
	require.NoError(t, err)
	assert.True(t, est.ConductFellBack)
	assert.True(t, est.Net.Equal(decimal.NewFromInt(1000)),
		"fallback level carries a 1.0 multiplier")
}
