package models

import "github.com/shopspring/decimal"

type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MonthlyTotal is one bar of the income vs. spending overview
type MonthlyTotal struct {
	Month    string          `json:"month"` // YYYY-MM
	Income   decimal.Decimal `json:"income"`
	Spending decimal.Decimal `json:"spending"`
}

type Dashboard struct {
	PersonalAccounts []Account      `json:"personalAccounts"`
	JointAccounts    []Account      `json:"jointAccounts"`
	Overview         []MonthlyTotal `json:"overview"`
}

type JointAccountOverview struct {
	Account           Account         `json:"account"`
	Transactions      []Transaction   `json:"transactions"`
	SpendingBreakdown []CategoryTotal `json:"spendingBreakdown"`
	Invitation        *Invitation     `json:"invitation,omitempty"`
}
