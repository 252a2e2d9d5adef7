package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction.
type TransactionType string

// TypeFilter narrows a transaction listing by type.
type TypeFilter string

type Transaction struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"accountId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Type        TransactionType `json:"type"`
	Category    *string         `json:"category,omitempty"`
}
