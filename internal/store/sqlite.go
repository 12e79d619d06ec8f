package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/gregglawdallas/caseval/internal/domain"
)

// Config row keys.
const (
	keyStandardConfig = "standard_calculator"
	keySeriousConfig  = "serious_calculator"
	keyDeathConfig    = "wrongful_death"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS config_entries (
	key        TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS calc_leads (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	phone      TEXT NOT NULL,
	source     TEXT NOT NULL,
	captured_at DATETIME NOT NULL,
	data       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS lead_archive (
	id          TEXT PRIMARY KEY,
	data        TEXT NOT NULL,
	archived_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS benchmarks (
	id         TEXT PRIMARY KEY,
	injury_id  TEXT NOT NULL,
	text       TEXT NOT NULL,
	date_added TEXT NOT NULL,
	is_demo    INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_calc_leads_source ON calc_leads(source);
CREATE INDEX IF NOT EXISTS idx_calc_leads_captured_at ON calc_leads(captured_at);
CREATE INDEX IF NOT EXISTS idx_benchmarks_injury_id ON benchmarks(injury_id);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// config

func (s *SQLiteStore) getConfig(ctx context.Context, key string, out any) (bool, error) {
	var data string
	err := s.db.GetContext(ctx, &data, `SELECT data FROM config_entries WHERE key = ?`, key)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, eris.Wrapf(err, "sqlite: get config %s", key)
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return false, eris.Wrapf(err, "sqlite: unmarshal config %s", key)
	}
	return true, nil
}

func (s *SQLiteStore) saveConfig(ctx context.Context, key string, cfg any) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return eris.Wrapf(err, "sqlite: marshal config %s", key)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO config_entries (key, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, string(data), time.Now().UTC(),
	)
	return eris.Wrapf(err, "sqlite: save config %s", key)
}

func (s *SQLiteStore) GetStandardConfig(ctx context.Context) (domain.StandardCalculatorConfig, error) {
	var cfg domain.StandardCalculatorConfig
	found, err := s.getConfig(ctx, keyStandardConfig, &cfg)
	if err != nil {
		return domain.StandardCalculatorConfig{}, err
	}
	if !found {
		return domain.DefaultStandardConfig(), nil
	}
	return cfg, nil
}

func (s *SQLiteStore) SaveStandardConfig(ctx context.Context, cfg domain.StandardCalculatorConfig) error {
	if err := cfg.Validate(); err != nil {
		return eris.Wrap(err, "sqlite: standard config")
	}
	return s.saveConfig(ctx, keyStandardConfig, cfg)
}

func (s *SQLiteStore) GetSeriousConfig(ctx context.Context) (domain.SeriousCalculatorConfig, error) {
	var cfg domain.SeriousCalculatorConfig
	found, err := s.getConfig(ctx, keySeriousConfig, &cfg)
	if err != nil {
		return domain.SeriousCalculatorConfig{}, err
	}
	if !found {
		return domain.DefaultSeriousConfig(), nil
	}
	return cfg, nil
}

func (s *SQLiteStore) SaveSeriousConfig(ctx context.Context, cfg domain.SeriousCalculatorConfig) error {
	if err := cfg.Validate(); err != nil {
		return eris.Wrap(err, "sqlite: serious config")
	}
	return s.saveConfig(ctx, keySeriousConfig, cfg)
}

func (s *SQLiteStore) GetDeathConfig(ctx context.Context) (domain.WrongfulDeathConfig, error) {
	var cfg domain.WrongfulDeathConfig
	found, err := s.getConfig(ctx, keyDeathConfig, &cfg)
	if err != nil {
		return domain.WrongfulDeathConfig{}, err
	}
	if !found {
		return domain.DefaultDeathConfig(), nil
	}
	return cfg, nil
}

func (s *SQLiteStore) SaveDeathConfig(ctx context.Context, cfg domain.WrongfulDeathConfig) error {
	return s.saveConfig(ctx, keyDeathConfig, cfg)
}

// ResetConfigs drops every saved config row, returning all calculators to
// the shipped defaults.
func (s *SQLiteStore) ResetConfigs(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM config_entries`)
	return eris.Wrap(err, "sqlite: reset configs")
}

// leads

func (s *SQLiteStore) SaveLead(ctx context.Context, lead domain.CalculatorLead) (*domain.CalculatorLead, error) {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	if lead.Timestamp.IsZero() {
		lead.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(lead)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal lead")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO calc_leads (id, name, phone, source, captured_at, data) VALUES (?, ?, ?, ?, ?, ?)`,
		lead.ID, lead.Name, lead.Phone, string(lead.CalculatorSource), lead.Timestamp, string(data),
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert lead")
	}

	return &lead, nil
}

func (s *SQLiteStore) ListLeads(ctx context.Context, filter LeadFilter) ([]domain.CalculatorLead, error) {
	query := `SELECT data FROM calc_leads`
	var args []any
	if filter.Source != "" {
		query += ` WHERE source = ?`
		args = append(args, string(filter.Source))
	}
	query += ` ORDER BY captured_at DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += ` OFFSET ?`
			args = append(args, filter.Offset)
		}
	}

	var rows []string
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, eris.Wrap(err, "sqlite: list leads")
	}

	leads := make([]domain.CalculatorLead, 0, len(rows))
	for _, data := range rows {
		var lead domain.CalculatorLead
		if err := json.Unmarshal([]byte(data), &lead); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal lead")
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

func (s *SQLiteStore) DeleteLead(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM calc_leads WHERE id = ?`, id)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete lead %s", id)
	}
	return checkRowsAffected(res, "lead", id)
}

// ArchiveLead moves a lead out of the active inbox, keeping the full record
// for recovery.
func (s *SQLiteStore) ArchiveLead(ctx context.Context, id string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin archive")
	}
	defer tx.Rollback()

	var data string
	err = tx.GetContext(ctx, &data, `SELECT data FROM calc_leads WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return eris.Errorf("lead not found: %s", id)
	}
	if err != nil {
		return eris.Wrapf(err, "sqlite: get lead %s", id)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO lead_archive (id, data, archived_at) VALUES (?, ?, ?)`,
		id, data, time.Now().UTC(),
	); err != nil {
		return eris.Wrapf(err, "sqlite: archive lead %s", id)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM calc_leads WHERE id = ?`, id); err != nil {
		return eris.Wrapf(err, "sqlite: remove archived lead %s", id)
	}

	return eris.Wrap(tx.Commit(), "sqlite: commit archive")
}

// RecoverLead moves an archived lead back into the active inbox.
func (s *SQLiteStore) RecoverLead(ctx context.Context, id string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin recover")
	}
	defer tx.Rollback()

	var data string
	err = tx.GetContext(ctx, &data, `SELECT data FROM lead_archive WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return eris.Errorf("archived lead not found: %s", id)
	}
	if err != nil {
		return eris.Wrapf(err, "sqlite: get archived lead %s", id)
	}

	var lead domain.CalculatorLead
	if err := json.Unmarshal([]byte(data), &lead); err != nil {
		return eris.Wrapf(err, "sqlite: unmarshal archived lead %s", id)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO calc_leads (id, name, phone, source, captured_at, data) VALUES (?, ?, ?, ?, ?, ?)`,
		lead.ID, lead.Name, lead.Phone, string(lead.CalculatorSource), lead.Timestamp, data,
	); err != nil {
		return eris.Wrapf(err, "sqlite: restore lead %s", id)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM lead_archive WHERE id = ?`, id); err != nil {
		return eris.Wrapf(err, "sqlite: remove recovered lead %s", id)
	}

	return eris.Wrap(tx.Commit(), "sqlite: commit recover")
}

func (s *SQLiteStore) ListArchive(ctx context.Context) ([]domain.ArchivedLead, error) {
	rows, err := s.db.QueryxContext(ctx,
		`SELECT id, data, archived_at FROM lead_archive ORDER BY archived_at DESC`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list archive")
	}
	defer rows.Close()

	var archived []domain.ArchivedLead
	for rows.Next() {
		var (
			entry domain.ArchivedLead
			data  string
		)
		if err := rows.Scan(&entry.ID, &data, &entry.ArchivedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan archive row")
		}
		if err := json.Unmarshal([]byte(data), &entry.Data); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal archived lead")
		}
		archived = append(archived, entry)
	}
	return archived, eris.Wrap(rows.Err(), "sqlite: archive rows")
}

func (s *SQLiteStore) ClearArchive(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM lead_archive`)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: clear archive")
	}
	n, err := res.RowsAffected()
	return int(n), eris.Wrap(err, "sqlite: rows affected")
}

// benchmarks

type benchmarkRow struct {
	ID        string `db:"id"`
	InjuryID  string `db:"injury_id"`
	Text      string `db:"text"`
	DateAdded string `db:"date_added"`
	IsDemo    bool   `db:"is_demo"`
}

func (s *SQLiteStore) ListBenchmarks(ctx context.Context) ([]domain.SettlementBenchmark, error) {
	var rows []benchmarkRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT id, injury_id, text, date_added, is_demo FROM benchmarks ORDER BY date_added DESC, id`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list benchmarks")
	}

	benchmarks := make([]domain.SettlementBenchmark, 0, len(rows))
	for _, r := range rows {
		benchmarks = append(benchmarks, domain.SettlementBenchmark{
			ID: r.ID, InjuryID: r.InjuryID, Text: r.Text, DateAdded: r.DateAdded, IsDemo: r.IsDemo,
		})
	}
	return benchmarks, nil
}

func (s *SQLiteStore) AddBenchmark(ctx context.Context, b domain.SettlementBenchmark) (*domain.SettlementBenchmark, error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.DateAdded == "" {
		b.DateAdded = time.Now().UTC().Format("2006-01-02")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO benchmarks (id, injury_id, text, date_added, is_demo) VALUES (?, ?, ?, ?, ?)`,
		b.ID, b.InjuryID, b.Text, b.DateAdded, b.IsDemo,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert benchmark")
	}
	return &b, nil
}

func (s *SQLiteStore) DeleteBenchmark(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM benchmarks WHERE id = ?`, id)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete benchmark %s", id)
	}
	return checkRowsAffected(res, "benchmark", id)
}

// ReplaceBenchmarks swaps the whole benchmark table in one transaction, used
// by catalog imports.
func (s *SQLiteStore) ReplaceBenchmarks(ctx context.Context, benchmarks []domain.SettlementBenchmark) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin replace benchmarks")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM benchmarks`); err != nil {
		return eris.Wrap(err, "sqlite: clear benchmarks")
	}
	for _, b := range benchmarks {
		if b.ID == "" {
			b.ID = uuid.New().String()
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO benchmarks (id, injury_id, text, date_added, is_demo) VALUES (?, ?, ?, ?, ?)`,
			b.ID, b.InjuryID, b.Text, b.DateAdded, b.IsDemo,
		); err != nil {
			return eris.Wrapf(err, "sqlite: insert benchmark %s", b.ID)
		}
	}

	return eris.Wrap(tx.Commit(), "sqlite: commit replace benchmarks")
}

// helpers

func checkRowsAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "rows affected")
	}
	if n == 0 {
		return eris.Errorf("%s not found: %s", entity, id)
	}
	return nil
}
