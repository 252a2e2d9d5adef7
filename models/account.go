package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID             string          `json:"accountId"`
	Name           string          `json:"accountName"`
	Balance        decimal.Decimal `json:"balance"`
	CurrencySymbol string          `json:"currencySymbol"`
	Type           string          `json:"accountType"`
	Status         string          `json:"status"`
	Purpose        string          `json:"purpose,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// JointAccountDetails is the first step of the joint account creation flow
type JointAccountDetails struct {
	AccountName    string `json:"accountName"`
	AccountPurpose string `json:"accountPurpose,omitempty"`
	AgreedToTerms  bool   `json:"agreedToTerms"`
}

// JointAccountRequest carries the whole creation flow: account details plus
// the partner invitation
type JointAccountRequest struct {
	JointAccountDetails
	PartnerEmail string      `json:"partnerEmail"`
	Permissions  Permissions `json:"permissions"`
}

type Invitation struct {
	ID           string      `json:"id"`
	AccountID    string      `json:"accountId"`
	PartnerEmail string      `json:"partnerEmail"`
	Permissions  Permissions `json:"permissions"`
	Status       string      `json:"status"`
	SentAt       time.Time   `json:"sentAt"`
	ResentCount  int         `json:"resentCount"`
}

// CreationStep is one stage of the joint account creation flow
type CreationStep struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
