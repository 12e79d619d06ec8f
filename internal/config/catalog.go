package config

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/gregglawdallas/caseval/internal/domain"
)

// CatalogFile is the on-disk bundle of calculator tuning tables. Sections
// are optional; an omitted section leaves the stored table untouched on
// import.
type CatalogFile struct {
	Standard   *domain.StandardCalculatorConfig `yaml:"standard,omitempty"`
	Serious    *domain.SeriousCalculatorConfig  `yaml:"serious,omitempty"`
	Death      *domain.WrongfulDeathConfig      `yaml:"wrongful_death,omitempty"`
	Benchmarks []domain.SettlementBenchmark     `yaml:"benchmarks,omitempty"`
}

// CatalogParser handles parsing of catalog configuration files.
type CatalogParser struct{}

// NewCatalogParser creates a new catalog parser.
func NewCatalogParser() *CatalogParser {
	return &CatalogParser{}
}

// LoadFromFile loads a catalog bundle from a YAML file.
func (cp *CatalogParser) LoadFromFile(filename string) (*CatalogFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, eris.Wrapf(err, "catalog: read file %s", filename)
	}

	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, eris.Wrap(err, "catalog: parse YAML")
	}

	if err := cp.Validate(&file); err != nil {
		return nil, err
	}

	return &file, nil
}

// Validate checks every section present in the bundle.
func (cp *CatalogParser) Validate(file *CatalogFile) error {
	if file.Standard != nil {
		if err := file.Standard.Validate(); err != nil {
			return eris.Wrap(err, "catalog: standard section")
		}
	}
	if file.Serious != nil {
		if err := file.Serious.Validate(); err != nil {
			return eris.Wrap(err, "catalog: serious section")
		}
	}
	for i, b := range file.Benchmarks {
		if b.Text == "" {
			return eris.Errorf("catalog: benchmark %d: text is required", i)
		}
	}
	return nil
}

// SaveToFile writes a catalog bundle to a YAML file.
func (cp *CatalogParser) SaveToFile(filename string, file *CatalogFile) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return eris.Wrap(err, "catalog: marshal YAML")
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return eris.Wrapf(err, "catalog: write file %s", filename)
	}
	return nil
}
