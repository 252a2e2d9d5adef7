package migrations

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

// AddInvitationsTable adds the partner invitations of joint accounts. The
// partner e-mail is stored encrypted.
func AddInvitationsTable(db *sql.DB) error {
	log.Info().Msg("Adding invitations table...")

	err := execAll(db,
		`CREATE TABLE IF NOT EXISTS invitations (
			id TEXT PRIMARY KEY,
			account_id TEXT NOT NULL UNIQUE REFERENCES accounts(id),
			partner_email TEXT NOT NULL,
			role TEXT NOT NULL,
			can_view_balance BOOLEAN NOT NULL,
			can_make_transactions BOOLEAN NOT NULL,
			can_invite_users BOOLEAN NOT NULL,
			spending_limit_enabled BOOLEAN NOT NULL,
			spending_limit_amount TEXT NOT NULL,
			status TEXT NOT NULL,
			sent_at TIMESTAMP NOT NULL,
			resent_count INTEGER NOT NULL DEFAULT 0
		)`,
	)
	if err != nil {
		return fmt.Errorf("failed to create invitations table: %w", err)
	}

	return nil
}
