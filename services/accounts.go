package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"jointbank/backend/database"
	"jointbank/backend/models"
)

const accountColumns = `id, name, balance, currency_symbol, account_type, status, purpose, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var a models.Account
	var purpose sql.NullString
	err := row.Scan(&a.ID, &a.Name, &a.Balance, &a.CurrencySymbol, &a.Type, &a.Status, &purpose, &a.CreatedAt)
	if err != nil {
		return a, err
	}
	if purpose.Valid {
		a.Purpose = purpose.String
	}
	return a, nil
}

// GetAccounts returns every account, personal accounts first
func GetAccounts(ctx context.Context) ([]models.Account, error) {
	rows, err := database.DB.QueryContext(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		ORDER BY CASE account_type WHEN 'Personal' THEN 0 ELSE 1 END, created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}

	return accounts, nil
}

// GetAccount returns a single account
func GetAccount(ctx context.Context, id string) (*models.Account, error) {
	row := database.DB.QueryRowContext(ctx, database.Rebind(`
		SELECT `+accountColumns+`
		FROM accounts
		WHERE id = ?
	`), id)

	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query account: %w", err)
	}

	return &a, nil
}

// GetAccountTransactions returns the transactions of one account in stored
// order. The "all" pseudo account combines every account, newest first.
func GetAccountTransactions(ctx context.Context, accountID string) ([]models.Transaction, error) {
	query := `
		SELECT id, account_id, description, amount, date, type, category
		FROM transactions
	`
	args := []any{}

	if accountID == models.AllAccountsID {
		query += " ORDER BY date DESC, position"
	} else {
		if _, err := GetAccount(ctx, accountID); err != nil {
			return nil, err
		}
		query += " WHERE account_id = ? ORDER BY position"
		args = append(args, accountID)
	}

	rows, err := database.DB.QueryContext(ctx, database.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		var category sql.NullString
		err := rows.Scan(&t.ID, &t.AccountID, &t.Description, &t.Amount, &t.Date, &t.Type, &category)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if category.Valid {
			c := category.String
			t.Category = &c
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	return transactions, nil
}

// SearchTransactions loads an account's transactions and narrows them with
// FilterTransactions
func SearchTransactions(ctx context.Context, q models.TransactionQuery) ([]models.Transaction, error) {
	transactions, err := GetAccountTransactions(ctx, q.AccountID)
	if err != nil {
		return nil, err
	}
	return FilterTransactions(transactions, q.SearchTerm, q.FilterType), nil
}

// GetDashboard groups the accounts by type and adds the monthly overview
// across all transactions
func GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	accounts, err := GetAccounts(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := &models.Dashboard{
		PersonalAccounts: []models.Account{},
		JointAccounts:    []models.Account{},
	}
	for _, a := range accounts {
		if a.Type == models.AccountJoint {
			dashboard.JointAccounts = append(dashboard.JointAccounts, a)
		} else {
			dashboard.PersonalAccounts = append(dashboard.PersonalAccounts, a)
		}
	}

	transactions, err := GetAccountTransactions(ctx, models.AllAccountsID)
	if err != nil {
		return nil, err
	}
	dashboard.Overview = MonthlyOverview(transactions)

	return dashboard, nil
}
