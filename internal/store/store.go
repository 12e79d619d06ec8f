// Package store persists calculator tuning tables, captured leads, and
// settlement benchmarks.
package store

import (
	"context"

	"github.com/gregglawdallas/caseval/internal/domain"
)

// LeadFilter specifies criteria for listing leads.
type LeadFilter struct {
	Source domain.CalculatorSource `json:"source,omitempty"`
	Limit  int                     `json:"limit,omitempty"`
	Offset int                     `json:"offset,omitempty"`
}

// Store defines the persistence interface for the valuation app. Config
// getters return the shipped defaults when no row has been saved yet, so a
// fresh database behaves identically to the stock catalog.
type Store interface {
	// Calculator config
	GetStandardConfig(ctx context.Context) (domain.StandardCalculatorConfig, error)
	SaveStandardConfig(ctx context.Context, cfg domain.StandardCalculatorConfig) error
	GetSeriousConfig(ctx context.Context) (domain.SeriousCalculatorConfig, error)
	SaveSeriousConfig(ctx context.Context, cfg domain.SeriousCalculatorConfig) error
	GetDeathConfig(ctx context.Context) (domain.WrongfulDeathConfig, error)
	SaveDeathConfig(ctx context.Context, cfg domain.WrongfulDeathConfig) error
	ResetConfigs(ctx context.Context) error

	// Leads
	SaveLead(ctx context.Context, lead domain.CalculatorLead) (*domain.CalculatorLead, error)
	ListLeads(ctx context.Context, filter LeadFilter) ([]domain.CalculatorLead, error)
	DeleteLead(ctx context.Context, id string) error
	ArchiveLead(ctx context.Context, id string) error
	RecoverLead(ctx context.Context, id string) error
	ListArchive(ctx context.Context) ([]domain.ArchivedLead, error)
	ClearArchive(ctx context.Context) (int, error)

	// Benchmarks
	ListBenchmarks(ctx context.Context) ([]domain.SettlementBenchmark, error)
	AddBenchmark(ctx context.Context, b domain.SettlementBenchmark) (*domain.SettlementBenchmark, error)
	DeleteBenchmark(ctx context.Context, id string) error
	ReplaceBenchmarks(ctx context.Context, benchmarks []domain.SettlementBenchmark) error

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
