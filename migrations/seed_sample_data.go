package migrations

import (
	"database/sql"
	"fmt"
	"time"

	"jointbank/backend/database"
	"jointbank/backend/security"

	"github.com/rs/zerolog/log"
)

// sampleTables lists the tables holding sample data, children first
var sampleTables = []string{"invitations", "transactions", "accounts"}

func day(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC)
}

var sampleAccounts = []struct {
	id, name, balance, accountType, status, purpose string
}{
	{"pa1", "Personal Checking", "5250.75", "Personal", "Active", ""},
	{"pa2", "Savings Account", "12340.00", "Personal", "Active", ""},
	{"ja1", "Family Expenses", "1875.20", "Joint", "Active", "Managing household bills"},
	{"ja2", "Vacation Fund", "500.00", "Joint", "Pending Partner Acceptance", "Summer trip"},
}

var sampleTransactions = []struct {
	id, accountID, description, amount string
	date                               time.Time
	txType, category                   string
}{
	{"txn101", "pa1", "Salary Deposit", "2500.00", day(time.July, 1), "credit", "Income"},
	{"txn102", "pa1", "Rent Payment", "1200.00", day(time.July, 2), "debit", "Housing"},
	{"txn103", "pa1", "Groceries - Whole Foods", "150.25", day(time.July, 5), "debit", "Food"},
	{"txn104", "pa1", "Online Course Subscription", "49.99", day(time.July, 10), "debit", "Education"},
	{"txn105", "pa1", "Restaurant - The Italian Place", "75.00", day(time.July, 12), "debit", "Dining"},
	{"txn106", "pa1", "Card Authorisation - Fuel", "60.00", day(time.July, 14), "pending", ""},
	{"txn201", "ja1", "Groceries - SuperMart", "75.50", day(time.July, 20), "debit", "Food"},
	{"txn202", "ja1", "Salary Deposit - Partner A", "1200.00", day(time.July, 15), "credit", "Income"},
	{"txn203", "ja1", "Electricity Bill", "95.00", day(time.July, 10), "debit", "Utilities"},
	{"txn204", "ja1", "Kids School Fees", "300.00", day(time.July, 5), "debit", "Education"},
	{"txn205", "ja1", "Groceries - Farmers Market", "42.30", day(time.June, 28), "debit", "Food"},
}

// SeedSampleData fills an empty store with the sample accounts, transactions
// and the pending invitation of the vacation fund. A store that already has
// accounts is left alone.
func SeedSampleData(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM accounts").Scan(&count); err != nil {
		return fmt.Errorf("failed to count accounts: %w", err)
	}
	if count > 0 {
		log.Debug().Int("accounts", count).Msg("Sample data already present, skipping seed")
		return nil
	}

	log.Info().Msg("Seeding sample data...")

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	createdAt := day(time.January, 1)
	for _, a := range sampleAccounts {
		var purpose sql.NullString
		if a.purpose != "" {
			purpose = sql.NullString{String: a.purpose, Valid: true}
		}
		_, err = tx.Exec(database.Rebind(`
			INSERT INTO accounts (id, name, balance, currency_symbol, account_type, status, purpose, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`), a.id, a.name, a.balance, "$", a.accountType, a.status, purpose, createdAt)
		if err != nil {
			return fmt.Errorf("failed to insert account %s: %w", a.id, err)
		}
	}

	for i, t := range sampleTransactions {
		var category sql.NullString
		if t.category != "" {
			category = sql.NullString{String: t.category, Valid: true}
		}
		_, err = tx.Exec(database.Rebind(`
			INSERT INTO transactions (id, account_id, description, amount, date, type, category, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`), t.id, t.accountID, t.description, t.amount, t.date, t.txType, category, i)
		if err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", t.id, err)
		}
	}

	email, err := security.Encrypt("partner@example.com")
	if err != nil {
		return fmt.Errorf("failed to encrypt sample invitation e-mail: %w", err)
	}
	_, err = tx.Exec(database.Rebind(`
		INSERT INTO invitations (id, account_id, partner_email, role, can_view_balance, can_make_transactions,
			can_invite_users, spending_limit_enabled, spending_limit_amount, status, sent_at, resent_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), "inv-ja2", "ja2", email, "contributor", true, true, false, true, "500", "pending", day(time.July, 18), 0)
	if err != nil {
		return fmt.Errorf("failed to insert sample invitation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sample data: %w", err)
	}

	log.Info().
		Int("accounts", len(sampleAccounts)).
		Int("transactions", len(sampleTransactions)).
		Msg("Sample data seeded")
	return nil
}

// ResetSampleData removes every account, transaction and invitation and
// seeds the sample data again
func ResetSampleData(db *sql.DB) error {
	log.Warn().Msg("Resetting sample data")

	for _, table := range sampleTables {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}

	return SeedSampleData(db)
}
