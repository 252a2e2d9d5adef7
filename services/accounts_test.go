package services

import (
	"context"
	"errors"
	"testing"

	"jointbank/backend/models"

	"github.com/shopspring/decimal"
)

func TestGetAccounts(t *testing.T) {
	setupServicesTestDB(t)

	accounts, err := GetAccounts(context.Background())
	if err != nil {
		t.Fatalf("Error loading accounts: %v", err)
	}

	got := make([]string, 0, len(accounts))
	for _, a := range accounts {
		got = append(got, a.ID)
	}
	want := []string{"pa1", "pa2", "ja1", "ja2"}
	if !sameIDs(got, want) {
		t.Errorf("Expected accounts %v, got %v", want, got)
	}
	if !accounts[0].Balance.Equal(decimal.RequireFromString("5250.75")) {
		t.Errorf("Expected balance 5250.75, got %s", accounts[0].Balance)
	}
}

func TestGetAccountNotFound(t *testing.T) {
	setupServicesTestDB(t)

	if _, err := GetAccount(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := GetAccountTransactions(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for transactions, got %v", err)
	}
}

func TestGetAccountTransactionsKeepsStoredOrder(t *testing.T) {
	setupServicesTestDB(t)

	transactions, err := GetAccountTransactions(context.Background(), "ja1")
	if err != nil {
		t.Fatalf("Error loading transactions: %v", err)
	}

	want := []string{"txn201", "txn202", "txn203", "txn204", "txn205"}
	if got := ids(transactions); !sameIDs(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestGetAccountTransactionsAllNewestFirst(t *testing.T) {
	setupServicesTestDB(t)

	transactions, err := GetAccountTransactions(context.Background(), models.AllAccountsID)
	if err != nil {
		t.Fatalf("Error loading transactions: %v", err)
	}

	want := []string{
		"txn201", "txn202", "txn106", "txn105", "txn104", "txn203",
		"txn103", "txn204", "txn102", "txn101", "txn205",
	}
	if got := ids(transactions); !sameIDs(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	for _, tx := range transactions {
		if tx.ID == "txn106" && tx.Category != nil {
			t.Errorf("Expected txn106 to have no category, got %q", *tx.Category)
		}
	}
}

func TestSearchTransactions(t *testing.T) {
	setupServicesTestDB(t)

	transactions, err := SearchTransactions(context.Background(), models.TransactionQuery{
		AccountID:  "pa1",
		SearchTerm: "food",
		FilterType: models.FilterDebit,
	})
	if err != nil {
		t.Fatalf("Error searching transactions: %v", err)
	}

	if got := ids(transactions); !sameIDs(got, []string{"txn103"}) {
		t.Errorf("Expected [txn103], got %v", got)
	}
}

func TestGetDashboard(t *testing.T) {
	setupServicesTestDB(t)

	dashboard, err := GetDashboard(context.Background())
	if err != nil {
		t.Fatalf("Error loading dashboard: %v", err)
	}

	if len(dashboard.PersonalAccounts) != 2 || len(dashboard.JointAccounts) != 2 {
		t.Errorf("Expected 2 personal and 2 joint accounts, got %d and %d",
			len(dashboard.PersonalAccounts), len(dashboard.JointAccounts))
	}

	if len(dashboard.Overview) != 2 {
		t.Fatalf("Expected 2 months in overview, got %+v", dashboard.Overview)
	}
	if dashboard.Overview[0].Month != "2024-06" || !dashboard.Overview[0].Spending.Equal(decimal.RequireFromString("42.30")) {
		t.Errorf("Unexpected June overview: %+v", dashboard.Overview[0])
	}
	if !dashboard.Overview[1].Income.Equal(decimal.NewFromInt(3700)) {
		t.Errorf("Expected July income 3700, got %s", dashboard.Overview[1].Income)
	}
}
