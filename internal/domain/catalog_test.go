package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDollars(t *testing.T) {
	tests := []struct {
		name     string
		value    decimal.Decimal
		expected string
	}{
		{"Zero", decimal.Zero, "0"},
		{"Small", decimal.NewFromInt(950), "950"},
		{"Thousands", decimal.NewFromInt(15125), "15,125"},
		{"Millions", decimal.NewFromInt(3630000), "3,630,000"},
		{"Fractional floors down", decimal.NewFromFloat(13612.5), "13,612"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Dollars(tt.value))
		})
	}
}

func TestDefaultStandardConfigValid(t *testing.T) {
	cfg := DefaultStandardConfig()
	require.NoError(t, cfg.Validate())

	assert.Len(t, cfg.BodyParts, 4)
	assert.Equal(t, "none", cfg.BodyParts[0].ID, "property-damage entry must stay first")
	assert.Len(t, cfg.ConductTypes, 3)
	assert.Equal(t, "standard", cfg.ConductTypes[0].ID)

	for _, p := range cfg.BodyParts {
		assert.NotEmpty(t, p.Label.EN, "body part %s labels both languages", p.ID)
		assert.NotEmpty(t, p.Label.ES, "body part %s labels both languages", p.ID)
	}
}

func TestDefaultSeriousConfigValid(t *testing.T) {
	cfg := DefaultSeriousConfig()
	require.NoError(t, cfg.Validate())

	assert.Len(t, cfg.Injuries, 8)
	for _, inj := range cfg.Injuries {
		require.Len(t, inj.Tiers, 3, "injury %s", inj.ID)
	}
	assert.Empty(t, cfg.TierOrderingWarnings(), "shipped tiers are ordered")
}

func TestStandardConfigValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StandardCalculatorConfig)
	}{
		{
			name:   "No body parts",
			mutate: func(c *StandardCalculatorConfig) { c.BodyParts = nil },
		},
		{
			name:   "No conduct types",
			mutate: func(c *StandardCalculatorConfig) { c.ConductTypes = nil },
		},
		{
			name: "Blank body part id",
			mutate: func(c *StandardCalculatorConfig) {
				c.BodyParts[1].ID = ""
			},
		},
		{
			name: "Negative boost",
			mutate: func(c *StandardCalculatorConfig) {
				c.BodyParts[1].Boost = decimal.NewFromFloat(-0.5)
			},
		},
		{
			name: "Multiplier below 1",
			mutate: func(c *StandardCalculatorConfig) {
				c.ConductTypes[0].Multiplier = decimal.NewFromFloat(0.5)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultStandardConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSeriousConfigValidateRejects(t *testing.T) {
	t.Run("Wrong tier count", func(t *testing.T) {
		cfg := DefaultSeriousConfig()
		cfg.Injuries[0].Tiers = cfg.Injuries[0].Tiers[:2]
		assert.Error(t, cfg.Validate())
	})

	t.Run("Negative floor", func(t *testing.T) {
		cfg := DefaultSeriousConfig()
		cfg.Injuries[2].Tiers[1].EDFloor = decimal.NewFromInt(-1)
		assert.Error(t, cfg.Validate())
	})
}

func TestTierOrderingWarnings(t *testing.T) {
	cfg := DefaultSeriousConfig()
	cfg.Injuries[0].Tiers[2].EDFloor = decimal.NewFromInt(1)

	warnings := cfg.TierOrderingWarnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], cfg.Injuries[0].ID)

	// Ordering trouble is advisory, never a validation failure.
	assert.NoError(t, cfg.Validate())
}

func TestDefaultDeathConfig(t *testing.T) {
	cfg := DefaultDeathConfig()
	assert.True(t, cfg.PecuniaryFloor.Equal(decimal.NewFromInt(1000000)))
}
