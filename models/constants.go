package models

// Roles a partner can hold on a joint account
const (
	RoleViewer      Role = "viewer"
	RoleContributor Role = "contributor"
	RoleFullControl Role = "full_control"
)

// Capability fields that can be toggled individually
const (
	FieldCanViewBalance       PermissionField = "canViewBalance"
	FieldCanMakeTransactions  PermissionField = "canMakeTransactions"
	FieldCanInviteUsers       PermissionField = "canInviteUsers"
	FieldSpendingLimitEnabled PermissionField = "spendingLimitEnabled"
)

// Transaction types
const (
	TransactionDebit   TransactionType = "debit"
	TransactionCredit  TransactionType = "credit"
	TransactionPending TransactionType = "pending"
)

// Type filters for transaction listings
const (
	FilterAll    TypeFilter = "all"
	FilterDebit  TypeFilter = "debit"
	FilterCredit TypeFilter = "credit"
)

// Account types
const (
	AccountPersonal = "Personal"
	AccountJoint    = "Joint"
)

// Account statuses
const (
	StatusActive         = "Active"
	StatusPendingPartner = "Pending Partner Acceptance"
	StatusClosed         = "Closed"
)

// Invitation statuses
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
)

// AllAccountsID is the pseudo account that combines every account's transactions.
const AllAccountsID = "all"
