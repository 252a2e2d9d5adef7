package migrations

import (
	"database/sql"
	"fmt"

	"jointbank/backend/database"

	"github.com/rs/zerolog/log"
)

type migration struct {
	name string
	fn   func(*sql.DB) error
}

// migrations run in order and are recorded by name
var migrations = []migration{
	{"base_schema", CreateBaseSchema},
	{"add_invitations_table", AddInvitationsTable},
}

// RunMigrations executes all pending migrations in order
func RunMigrations(db *sql.DB) error {
	log.Info().Msg("Running migrations...")

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			name TEXT PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, m := range migrations {
		var count int
		err := db.QueryRow(database.Rebind("SELECT COUNT(*) FROM migrations WHERE name = ?"), m.name).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}

		if count > 0 {
			log.Debug().Str("migration", m.name).Msg("Skipping already applied migration")
			continue
		}

		log.Info().Str("migration", m.name).Msg("Applying migration")
		if err := m.fn(db); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", m.name, err)
		}

		_, err = db.Exec(database.Rebind("INSERT INTO migrations (name) VALUES (?)"), m.name)
		if err != nil {
			return fmt.Errorf("failed to record migration: %w", err)
		}
	}

	log.Info().Msg("All migrations completed successfully")
	return nil
}

// execAll runs each statement on its own so both drivers accept them
func execAll(db *sql.DB, statements ...string) error {
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
