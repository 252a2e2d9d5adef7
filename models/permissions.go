package models

import "github.com/shopspring/decimal"

// Role is the access level a partner holds on a joint account.
type Role string

// PermissionField names one of the boolean capabilities in Permissions.
type PermissionField string

// Permissions is the capability set granted to a joint account partner.
// SpendingLimitEnabled and SpendingLimitAmount only matter for contributors
// who can make transactions.
type Permissions struct {
	Role                 Role            `json:"role"`
	CanViewBalance       bool            `json:"canViewBalance"`
	CanMakeTransactions  bool            `json:"canMakeTransactions"`
	CanInviteUsers       bool            `json:"canInviteUsers"`
	SpendingLimitEnabled bool            `json:"spendingLimitEnabled"`
	SpendingLimitAmount  decimal.Decimal `json:"spendingLimitAmount"`
}

// RoleRule is one row of the role to capability table. A nil
// SpendingLimitEnabled leaves the current value alone.
type RoleRule struct {
	Role                 Role  `json:"role"`
	CanViewBalance       bool  `json:"canViewBalance"`
	CanMakeTransactions  bool  `json:"canMakeTransactions"`
	CanInviteUsers       bool  `json:"canInviteUsers"`
	SpendingLimitEnabled *bool `json:"spendingLimitEnabled"`
}

// PermissionControls describes which parts of the permission form are
// editable or visible for a given permission set.
type PermissionControls struct {
	CapabilitiesVisible  bool                     `json:"capabilitiesVisible"`
	Editable             map[PermissionField]bool `json:"editable"`
	SpendingLimitVisible bool                     `json:"spendingLimitVisible"`
	SpendingLimitMax     decimal.Decimal          `json:"spendingLimitMax"`
	SpendingLimitStep    decimal.Decimal          `json:"spendingLimitStep"`
}
