package migrations

import (
	"database/sql"
	"testing"

	"jointbank/backend/database"
	"jointbank/backend/security"
)

func setupMigrationTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(database.Config{Driver: database.DriverSQLite, Path: database.MemoryPath})
	if err != nil {
		t.Fatalf("Error opening database: %v", err)
	}
	database.Use(db, database.DriverSQLite)
	security.InitializeEncryption("migration-test-key")

	t.Cleanup(func() { db.Close() })
	return db
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("Error counting %s: %v", table, err)
	}
	return count
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	db := setupMigrationTestDB(t)

	if err := RunMigrations(db); err != nil {
		t.Fatalf("First migration run failed: %v", err)
	}
	if err := RunMigrations(db); err != nil {
		t.Fatalf("Second migration run failed: %v", err)
	}

	if got := countRows(t, db, "migrations"); got != len(migrations) {
		t.Errorf("Expected %d recorded migrations, got %d", len(migrations), got)
	}
}

func TestSeedSampleData(t *testing.T) {
	db := setupMigrationTestDB(t)

	if err := RunMigrations(db); err != nil {
		t.Fatalf("Error running migrations: %v", err)
	}
	if err := SeedSampleData(db); err != nil {
		t.Fatalf("Error seeding sample data: %v", err)
	}

	if got := countRows(t, db, "accounts"); got != len(sampleAccounts) {
		t.Errorf("Expected %d accounts, got %d", len(sampleAccounts), got)
	}
	if got := countRows(t, db, "transactions"); got != len(sampleTransactions) {
		t.Errorf("Expected %d transactions, got %d", len(sampleTransactions), got)
	}

	// Seeding again must not duplicate anything
	if err := SeedSampleData(db); err != nil {
		t.Fatalf("Error seeding twice: %v", err)
	}
	if got := countRows(t, db, "accounts"); got != len(sampleAccounts) {
		t.Errorf("Expected %d accounts after second seed, got %d", len(sampleAccounts), got)
	}

	// The invitation e-mail is stored encrypted
	var stored string
	if err := db.QueryRow("SELECT partner_email FROM invitations WHERE account_id = 'ja2'").Scan(&stored); err != nil {
		t.Fatalf("Error reading invitation: %v", err)
	}
	if stored == "partner@example.com" {
		t.Error("Expected partner e-mail to be encrypted at rest")
	}
	plain, err := security.Decrypt(stored)
	if err != nil {
		t.Fatalf("Error decrypting partner e-mail: %v", err)
	}
	if plain != "partner@example.com" {
		t.Errorf("Expected partner@example.com, got %s", plain)
	}
}

func TestResetSampleData(t *testing.T) {
	db := setupMigrationTestDB(t)

	if err := RunMigrations(db); err != nil {
		t.Fatalf("Error running migrations: %v", err)
	}
	if err := SeedSampleData(db); err != nil {
		t.Fatalf("Error seeding sample data: %v", err)
	}

	if _, err := db.Exec("UPDATE accounts SET status = 'Closed' WHERE id = 'pa1'"); err != nil {
		t.Fatalf("Error updating account: %v", err)
	}

	if err := ResetSampleData(db); err != nil {
		t.Fatalf("Error resetting sample data: %v", err)
	}

	var status string
	if err := db.QueryRow("SELECT status FROM accounts WHERE id = 'pa1'").Scan(&status); err != nil {
		t.Fatalf("Error reading account: %v", err)
	}
	if status != "Active" {
		t.Errorf("Expected reset to restore status Active, got %s", status)
	}
}
