package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregglawdallas/caseval/internal/domain"
)

func TestCatalogRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")

	std := domain.DefaultStandardConfig()
	serious := domain.DefaultSeriousConfig()
	death := domain.DefaultDeathConfig()
	bundle := &CatalogFile{
		Standard: &std,
		Serious:  &serious,
		Death:    &death,
		Benchmarks: []domain.SettlementBenchmark{
			{ID: "b1", InjuryID: "tbi", Text: "$2.1M TBI settlement, 2024", DateAdded: "2024-03-01"},
		},
	}

	parser := NewCatalogParser()
	require.NoError(t, parser.SaveToFile(path, bundle))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	require.NotNil(t, loaded.Standard)
	assert.Len(t, loaded.Standard.BodyParts, 4)
	assert.Equal(t, "sprains", loaded.Standard.BodyParts[1].ID)
	assert.True(t, loaded.Standard.BodyParts[1].Boost.Equal(std.BodyParts[1].Boost))

	require.NotNil(t, loaded.Serious)
	assert.Len(t, loaded.Serious.Injuries, 8)
	assert.True(t, loaded.Serious.Injuries[0].Tiers[1].EDFloor.Equal(serious.Injuries[0].Tiers[1].EDFloor))

	require.NotNil(t, loaded.Death)
	assert.True(t, loaded.Death.PecuniaryFloor.Equal(death.PecuniaryFloor))

	require.Len(t, loaded.Benchmarks, 1)
	assert.Equal(t, "tbi", loaded.Benchmarks[0].InjuryID)
}

func TestCatalogPartialBundle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")

	yaml := `
standard:
  body_parts:
    - id: none
      label: {en: "Property Only", es: "Solo Propiedad"}
      boost: 0
    - id: sprains
      label: {en: "Sprains", es: "Esguinces"}
      boost: 1.1
  conduct_types:
    - id: standard
      label: {en: "Negligence", es: "Negligencia"}
      multiplier: 2.5
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	loaded, err := NewCatalogParser().LoadFromFile(path)
	require.NoError(t, err)

	require.NotNil(t, loaded.Standard)
	assert.Len(t, loaded.Standard.BodyParts, 2)
	assert.Nil(t, loaded.Serious, "omitted sections stay nil")
	assert.Nil(t, loaded.Death)
}

func TestCatalogRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "Two tiers",
			yaml: `
serious:
  injuries:
    - id: tbi
      label: "TBI"
      tiers:
        - {label: "Mild", ed_floor: 150000, min_weight: 2.0}
        - {label: "Severe", ed_floor: 1500000, min_weight: 7.0}
`,
		},
		{
			name: "Benchmark without text",
			yaml: `
benchmarks:
  - id: b1
    injury_id: tbi
`,
		},
		{
			name: "Not YAML",
			yaml: `{{{`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))
			_, err := NewCatalogParser().LoadFromFile(path)
			assert.Error(t, err)
		})
	}
}

func TestCatalogMissingFile(t *testing.T) {
	_, err := NewCatalogParser().LoadFromFile("/nonexistent/catalog.yaml")
	assert.Error(t, err)
}
