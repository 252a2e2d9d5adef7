package migrations

import (
	"database/sql"
	"fmt"
)

// CreateBaseSchema creates the accounts and transactions tables. Amounts are
// stored as decimal strings so they round-trip exactly on SQLite and Postgres.
func CreateBaseSchema(db *sql.DB) error {
	err := execAll(db,
		`CREATE TABLE IF NOT EXISTS accounts (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			balance TEXT NOT NULL DEFAULT '0',
			currency_symbol TEXT NOT NULL DEFAULT '$',
			account_type TEXT NOT NULL,
			status TEXT NOT NULL,
			purpose TEXT,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id TEXT PRIMARY KEY,
			account_id TEXT NOT NULL REFERENCES accounts(id),
			description TEXT NOT NULL,
			amount TEXT NOT NULL,
			date TIMESTAMP NOT NULL,
			type TEXT NOT NULL,
			category TEXT,
			position INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_account ON transactions (account_id, position)`,
	)
	if err != nil {
		return fmt.Errorf("failed to create base schema: %w", err)
	}
	return nil
}
