package services

import (
	"errors"
	"testing"
	"time"

	"jointbank/backend/models"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: "t1", Description: "Salary Deposit", Amount: decimal.NewFromInt(2500), Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), Type: models.TransactionCredit, Category: strPtr("Income")},
		{ID: "t2", Description: "Rent Payment", Amount: decimal.NewFromInt(1200), Date: time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC), Type: models.TransactionDebit, Category: strPtr("Housing")},
		{ID: "t3", Description: "Groceries - Whole Foods", Amount: decimal.RequireFromString("150.25"), Date: time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC), Type: models.TransactionDebit, Category: strPtr("Food")},
		{ID: "t4", Description: "Card authorisation", Amount: decimal.NewFromInt(60), Date: time.Date(2024, 7, 14, 0, 0, 0, 0, time.UTC), Type: models.TransactionPending},
		{ID: "t5", Description: "Refund", Amount: decimal.NewFromInt(20), Date: time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), Type: models.TransactionCredit, Category: strPtr("Food Returns")},
	}
}

func ids(transactions []models.Transaction) []string {
	out := make([]string, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, tx.ID)
	}
	return out
}

func sameIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterTransactions(t *testing.T) {
	testCases := []struct {
		name       string
		searchTerm string
		filter     models.TypeFilter
		expected   []string
	}{
		{"Empty search and all types is identity", "", models.FilterAll, []string{"t1", "t2", "t3", "t4", "t5"}},
		{"Search is case-insensitive", "rent", models.FilterAll, []string{"t2"}},
		{"Upper case search", "SALARY", models.FilterAll, []string{"t1"}},
		{"Search matches category", "food", models.FilterAll, []string{"t3", "t5"}},
		{"Search and type combine", "food", models.FilterDebit, []string{"t3"}},
		{"Credits only", "", models.FilterCredit, []string{"t1", "t5"}},
		{"Debits only", "", models.FilterDebit, []string{"t2", "t3"}},
		{"Pending only shows under all", "authorisation", models.FilterAll, []string{"t4"}},
		{"Pending excluded from debit filter", "authorisation", models.FilterDebit, []string{}},
		{"No match", "mortgage", models.FilterAll, []string{}},
		{"Whitespace is literal", " ", models.FilterAll, []string{"t1", "t2", "t3", "t4", "t5"}},
		{"Whitespace does not become empty", "  ", models.FilterAll, []string{}},
		{"Hyphenated description", "s - w", models.FilterAll, []string{"t3"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := FilterTransactions(sampleTransactions(), tc.searchTerm, tc.filter)
			if got := ids(result); !sameIDs(got, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestFilterTransactionsExamples(t *testing.T) {
	txs := []models.Transaction{
		{ID: "t1", Description: "Salary Deposit", Type: models.TransactionCredit},
		{ID: "t2", Description: "Rent Payment", Type: models.TransactionDebit},
	}

	if got := ids(FilterTransactions(txs, "rent", models.FilterAll)); !sameIDs(got, []string{"t2"}) {
		t.Errorf("Expected [t2], got %v", got)
	}
	if got := ids(FilterTransactions(txs, "", models.FilterCredit)); !sameIDs(got, []string{"t1"}) {
		t.Errorf("Expected [t1], got %v", got)
	}
}

func TestFilterTransactionsEmptyInput(t *testing.T) {
	result := FilterTransactions(nil, "rent", models.FilterAll)
	if result == nil {
		t.Fatal("Expected an empty, non-nil result")
	}
	if len(result) != 0 {
		t.Errorf("Expected no transactions, got %d", len(result))
	}
}

func TestFilterTransactionsIsSubset(t *testing.T) {
	input := sampleTransactions()
	inputIDs := map[string]bool{}
	for _, tx := range input {
		inputIDs[tx.ID] = true
	}

	for _, term := range []string{"", "a", "e", "food", "x"} {
		for _, filter := range []models.TypeFilter{models.FilterAll, models.FilterDebit, models.FilterCredit} {
			for _, tx := range FilterTransactions(input, term, filter) {
				if !inputIDs[tx.ID] {
					t.Errorf("Result contains unknown id %s for term %q filter %s", tx.ID, term, filter)
				}
			}
		}
	}
}

func TestFilterTransactionsDoesNotMutateInput(t *testing.T) {
	input := sampleTransactions()
	before := ids(input)

	FilterTransactions(input, "food", models.FilterDebit)
	FilterTransactions(input, "", models.FilterCredit)

	if after := ids(input); !sameIDs(before, after) {
		t.Errorf("Input changed from %v to %v", before, after)
	}
}

func TestFilterTransactionsIsDeterministic(t *testing.T) {
	first := ids(FilterTransactions(sampleTransactions(), "e", models.FilterDebit))
	second := ids(FilterTransactions(sampleTransactions(), "e", models.FilterDebit))
	if !sameIDs(first, second) {
		t.Errorf("Expected identical results, got %v and %v", first, second)
	}
}

func TestParseTypeFilter(t *testing.T) {
	testCases := []struct {
		input    string
		expected models.TypeFilter
		wantErr  bool
	}{
		{"", models.FilterAll, false},
		{"all", models.FilterAll, false},
		{"debit", models.FilterDebit, false},
		{"credit", models.FilterCredit, false},
		{"pending", "", true},
		{"Debit", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			filter, err := ParseTypeFilter(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("Expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if filter != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, filter)
			}
		})
	}
}
