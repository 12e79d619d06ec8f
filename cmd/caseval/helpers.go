package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"

	"github.com/gregglawdallas/caseval/internal/store"
)

// initStore opens the configured SQLite database and runs migrations.
func initStore(ctx context.Context) (*store.SQLiteStore, error) {
	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, eris.Wrap(err, "open store")
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}
	return st, nil
}

// money converts a float flag value into a decimal amount.
func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// printJSON writes indented JSON to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return eris.Wrap(err, "marshal json")
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
