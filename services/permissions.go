package services

import (
	"fmt"

	"jointbank/backend/models"

	"github.com/shopspring/decimal"
)

// Presentation bounds for the spending limit slider. The engine itself does
// not cap the amount.
var (
	SpendingLimitSliderMax  = decimal.NewFromInt(1000)
	SpendingLimitSliderStep = decimal.NewFromInt(10)
	DefaultSpendingLimit    = decimal.NewFromInt(500)
)

func boolPtr(v bool) *bool { return &v }

// roleRules maps each role to the capabilities it implies. Contributors keep
// whatever spending limit toggle they had.
var roleRules = map[models.Role]models.RoleRule{
	models.RoleViewer: {
		Role:                 models.RoleViewer,
		CanViewBalance:       true,
		CanMakeTransactions:  false,
		CanInviteUsers:       false,
		SpendingLimitEnabled: boolPtr(false),
	},
	models.RoleContributor: {
		Role:                 models.RoleContributor,
		CanViewBalance:       true,
		CanMakeTransactions:  true,
		CanInviteUsers:       false,
		SpendingLimitEnabled: nil,
	},
	models.RoleFullControl: {
		Role:                 models.RoleFullControl,
		CanViewBalance:       true,
		CanMakeTransactions:  true,
		CanInviteUsers:       true,
		SpendingLimitEnabled: boolPtr(false),
	},
}

// roleOrder is the display order of the roles
var roleOrder = []models.Role{models.RoleViewer, models.RoleContributor, models.RoleFullControl}

// Rules returns the role table in display order
func Rules() []models.RoleRule {
	rules := make([]models.RoleRule, 0, len(roleOrder))
	for _, role := range roleOrder {
		rules = append(rules, roleRules[role])
	}
	return rules
}

// ParseRole validates a role coming from outside the process
func ParseRole(s string) (models.Role, error) {
	role := models.Role(s)
	if _, ok := roleRules[role]; !ok {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, s)
	}
	return role, nil
}

// ParsePermissionField validates a capability field name
func ParsePermissionField(s string) (models.PermissionField, error) {
	switch field := models.PermissionField(s); field {
	case models.FieldCanViewBalance, models.FieldCanMakeTransactions,
		models.FieldCanInviteUsers, models.FieldSpendingLimitEnabled:
		return field, nil
	}
	return "", fmt.Errorf("%w: unknown permission field %q", ErrInvalidInput, s)
}

// ApplyRole switches the permission set to a new role and derives the
// capability flags from the role table. The spending limit amount is kept.
// Roles missing from the table leave the permission set unchanged.
func ApplyRole(current models.Permissions, role models.Role) models.Permissions {
	rule, ok := roleRules[role]
	if !ok {
		return current
	}

	next := current
	next.Role = role
	next.CanViewBalance = rule.CanViewBalance
	next.CanMakeTransactions = rule.CanMakeTransactions
	next.CanInviteUsers = rule.CanInviteUsers
	if rule.SpendingLimitEnabled != nil {
		next.SpendingLimitEnabled = *rule.SpendingLimitEnabled
	}
	return next
}

// SetFlag sets a single capability flag and leaves everything else,
// including the role, as it was. Whether the field may be edited at all is
// the caller's decision (see IsEditable).
func SetFlag(current models.Permissions, field models.PermissionField, value bool) models.Permissions {
	next := current
	switch field {
	case models.FieldCanViewBalance:
		next.CanViewBalance = value
	case models.FieldCanMakeTransactions:
		next.CanMakeTransactions = value
	case models.FieldCanInviteUsers:
		next.CanInviteUsers = value
	case models.FieldSpendingLimitEnabled:
		next.SpendingLimitEnabled = value
	}
	return next
}

// SetSpendingLimit replaces the spending limit amount, clamping negative
// values to zero
func SetSpendingLimit(current models.Permissions, amount decimal.Decimal) models.Permissions {
	next := current
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	next.SpendingLimitAmount = amount
	return next
}

// SpendingLimitVisible reports whether the spending limit section applies
func SpendingLimitVisible(p models.Permissions) bool {
	return p.Role == models.RoleContributor && p.CanMakeTransactions
}

// CapabilitiesVisible reports whether the per-capability toggles are shown.
// Full control is managed by role alone.
func CapabilitiesVisible(p models.Permissions) bool {
	return p.Role != models.RoleFullControl
}

// IsEditable reports whether a user may change the given field
func IsEditable(p models.Permissions, field models.PermissionField) bool {
	switch field {
	case models.FieldCanViewBalance:
		return false
	case models.FieldCanMakeTransactions:
		return p.Role != models.RoleViewer
	case models.FieldCanInviteUsers:
		return p.Role == models.RoleFullControl
	case models.FieldSpendingLimitEnabled:
		return SpendingLimitVisible(p)
	}
	return false
}

// Controls describes the permission form for a permission set
func Controls(p models.Permissions) models.PermissionControls {
	editable := map[models.PermissionField]bool{}
	for _, field := range []models.PermissionField{
		models.FieldCanViewBalance,
		models.FieldCanMakeTransactions,
		models.FieldCanInviteUsers,
		models.FieldSpendingLimitEnabled,
	} {
		editable[field] = IsEditable(p, field)
	}

	return models.PermissionControls{
		CapabilitiesVisible:  CapabilitiesVisible(p),
		Editable:             editable,
		SpendingLimitVisible: SpendingLimitVisible(p),
		SpendingLimitMax:     SpendingLimitSliderMax,
		SpendingLimitStep:    SpendingLimitSliderStep,
	}
}

// DefaultInvitePermissions is the permission set a new invitation starts with
func DefaultInvitePermissions() models.Permissions {
	return models.Permissions{
		Role:                 models.RoleContributor,
		CanViewBalance:       true,
		CanMakeTransactions:  true,
		CanInviteUsers:       false,
		SpendingLimitEnabled: false,
		SpendingLimitAmount:  DefaultSpendingLimit,
	}
}
