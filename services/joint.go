package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"jointbank/backend/database"
	"jointbank/backend/models"
	"jointbank/backend/security"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// now is replaced in tests
var now = time.Now

var creationSteps = []models.CreationStep{
	{ID: "initiate", Label: "Account Details"},
	{ID: "invite", Label: "Invite Partner"},
	{ID: "confirm", Label: "Confirmation"},
}

// CreationSteps returns the steps of the joint account creation flow
func CreationSteps() []models.CreationStep {
	steps := make([]models.CreationStep, len(creationSteps))
	copy(steps, creationSteps)
	return steps
}

// ValidateAccountDetails checks the first step of the creation flow and
// returns the details with the name and purpose trimmed
func ValidateAccountDetails(d models.JointAccountDetails) (models.JointAccountDetails, error) {
	d.AccountName = strings.TrimSpace(d.AccountName)
	d.AccountPurpose = strings.TrimSpace(d.AccountPurpose)

	if d.AccountName == "" || !d.AgreedToTerms {
		return d, fmt.Errorf("%w: please provide an account name and agree to the terms", ErrInvalidInput)
	}
	return d, nil
}

// ValidatePartnerEmail checks the partner's e-mail address
func ValidatePartnerEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: please enter your partner's email address", ErrInvalidInput)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: please enter a valid email address", ErrInvalidInput)
	}
	return nil
}

// invitableFields are applied in this order so that turning transactions on
// unlocks the spending limit toggle before it is read
var invitableFields = []models.PermissionField{
	models.FieldCanMakeTransactions,
	models.FieldCanInviteUsers,
	models.FieldSpendingLimitEnabled,
}

// normalizeInvitePermissions fills in the defaults for an empty permission
// set. Otherwise it rebuilds the set from the role's rule, keeps only the
// flags the role lets a user edit and clamps the spending limit.
func normalizeInvitePermissions(p models.Permissions) (models.Permissions, error) {
	if p.Role == "" {
		return DefaultInvitePermissions(), nil
	}
	role, err := ParseRole(string(p.Role))
	if err != nil {
		return p, err
	}

	next := ApplyRole(DefaultInvitePermissions(), role)
	for _, field := range invitableFields {
		if IsEditable(next, field) {
			next = SetFlag(next, field, flagValue(p, field))
		}
	}
	return SetSpendingLimit(next, p.SpendingLimitAmount), nil
}

func flagValue(p models.Permissions, field models.PermissionField) bool {
	switch field {
	case models.FieldCanViewBalance:
		return p.CanViewBalance
	case models.FieldCanMakeTransactions:
		return p.CanMakeTransactions
	case models.FieldCanInviteUsers:
		return p.CanInviteUsers
	case models.FieldSpendingLimitEnabled:
		return p.SpendingLimitEnabled
	}
	return false
}

// CreateJointAccount runs the whole creation flow: it validates the request,
// creates the joint account pending the partner's acceptance and records the
// invitation. Sending the invitation is only logged.
func CreateJointAccount(ctx context.Context, req models.JointAccountRequest) (*models.Account, *models.Invitation, error) {
	details, err := ValidateAccountDetails(req.JointAccountDetails)
	if err != nil {
		return nil, nil, err
	}
	if err := ValidatePartnerEmail(req.PartnerEmail); err != nil {
		return nil, nil, err
	}
	permissions, err := normalizeInvitePermissions(req.Permissions)
	if err != nil {
		return nil, nil, err
	}

	encryptedEmail, err := security.Encrypt(req.PartnerEmail)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encrypt partner email: %w", err)
	}

	createdAt := now().UTC()
	account := &models.Account{
		ID:             uuid.NewString(),
		Name:           details.AccountName,
		Balance:        decimal.Zero,
		CurrencySymbol: "$",
		Type:           models.AccountJoint,
		Status:         models.StatusPendingPartner,
		Purpose:        details.AccountPurpose,
		CreatedAt:      createdAt,
	}
	invitation := &models.Invitation{
		ID:           uuid.NewString(),
		AccountID:    account.ID,
		PartnerEmail: req.PartnerEmail,
		Permissions:  permissions,
		Status:       models.InvitationPending,
		SentAt:       createdAt,
	}

	tx, err := database.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var purpose sql.NullString
	if account.Purpose != "" {
		purpose = sql.NullString{String: account.Purpose, Valid: true}
	}

	_, err = tx.ExecContext(ctx, database.Rebind(`
		INSERT INTO accounts (id, name, balance, currency_symbol, account_type, status, purpose, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`), account.ID, account.Name, account.Balance, account.CurrencySymbol, account.Type, account.Status, purpose, account.CreatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to insert joint account: %w", err)
	}

	_, err = tx.ExecContext(ctx, database.Rebind(`
		INSERT INTO invitations (id, account_id, partner_email, role, can_view_balance, can_make_transactions,
			can_invite_users, spending_limit_enabled, spending_limit_amount, status, sent_at, resent_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), invitation.ID, invitation.AccountID, encryptedEmail, string(permissions.Role),
		permissions.CanViewBalance, permissions.CanMakeTransactions, permissions.CanInviteUsers,
		permissions.SpendingLimitEnabled, permissions.SpendingLimitAmount,
		invitation.Status, invitation.SentAt, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to insert invitation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit joint account: %w", err)
	}

	log.Info().
		Str("account_id", account.ID).
		Str("partner", security.MaskEmail(req.PartnerEmail)).
		Str("role", string(permissions.Role)).
		Msg("Invitation sent")

	return account, invitation, nil
}

// GetInvitation returns the partner invitation of a joint account
func GetInvitation(ctx context.Context, accountID string) (*models.Invitation, error) {
	var inv models.Invitation
	var encryptedEmail, role string

	err := database.DB.QueryRowContext(ctx, database.Rebind(`
		SELECT id, account_id, partner_email, role, can_view_balance, can_make_transactions,
			can_invite_users, spending_limit_enabled, spending_limit_amount, status, sent_at, resent_count
		FROM invitations
		WHERE account_id = ?
	`), accountID).Scan(
		&inv.ID, &inv.AccountID, &encryptedEmail, &role,
		&inv.Permissions.CanViewBalance, &inv.Permissions.CanMakeTransactions,
		&inv.Permissions.CanInviteUsers, &inv.Permissions.SpendingLimitEnabled,
		&inv.Permissions.SpendingLimitAmount, &inv.Status, &inv.SentAt, &inv.ResentCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("invitation for account %s: %w", accountID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query invitation: %w", err)
	}
	inv.Permissions.Role = models.Role(role)

	inv.PartnerEmail, err = security.Decrypt(encryptedEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt partner email: %w", err)
	}

	return &inv, nil
}

// getPendingJointAccount loads a joint account and checks that it still
// waits for the partner
func getPendingJointAccount(ctx context.Context, accountID string) (*models.Account, error) {
	account, err := GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Type != models.AccountJoint {
		return nil, fmt.Errorf("joint account %s: %w", accountID, ErrNotFound)
	}
	if account.Status != models.StatusPendingPartner {
		return nil, fmt.Errorf("%w: account %s is %s, not pending partner acceptance", ErrConflict, accountID, account.Status)
	}
	return account, nil
}

// ResendInvitation sends the invitation of a pending joint account again.
// Like the first invitation, the resend is only logged.
func ResendInvitation(ctx context.Context, accountID string) (*models.Invitation, error) {
	if _, err := getPendingJointAccount(ctx, accountID); err != nil {
		return nil, err
	}

	res, err := database.DB.ExecContext(ctx, database.Rebind(`
		UPDATE invitations
		SET resent_count = resent_count + 1, sent_at = ?
		WHERE account_id = ? AND status = ?
	`), now().UTC(), accountID, models.InvitationPending)
	if err != nil {
		return nil, fmt.Errorf("failed to update invitation: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, fmt.Errorf("pending invitation for account %s: %w", accountID, ErrNotFound)
	}

	inv, err := GetInvitation(ctx, accountID)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("account_id", accountID).
		Str("partner", security.MaskEmail(inv.PartnerEmail)).
		Int("resent_count", inv.ResentCount).
		Msg("Invitation resent")

	return inv, nil
}

// AcceptInvitation activates a pending joint account on behalf of the
// invited partner
func AcceptInvitation(ctx context.Context, accountID string) (*models.Account, error) {
	account, err := getPendingJointAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	tx, err := database.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, database.Rebind(`
		UPDATE invitations SET status = ? WHERE account_id = ? AND status = ?
	`), models.InvitationAccepted, accountID, models.InvitationPending)
	if err != nil {
		return nil, fmt.Errorf("failed to accept invitation: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, fmt.Errorf("pending invitation for account %s: %w", accountID, ErrNotFound)
	}

	_, err = tx.ExecContext(ctx, database.Rebind(`
		UPDATE accounts SET status = ? WHERE id = ?
	`), models.StatusActive, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to activate account: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit acceptance: %w", err)
	}

	account.Status = models.StatusActive
	log.Info().Str("account_id", accountID).Msg("Invitation accepted, joint account active")

	return account, nil
}

// GetJointAccountOverview returns a joint account with its transactions and,
// once the account is active, its spending breakdown
func GetJointAccountOverview(ctx context.Context, accountID string) (*models.JointAccountOverview, error) {
	account, err := GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Type != models.AccountJoint {
		return nil, fmt.Errorf("joint account %s: %w", accountID, ErrNotFound)
	}

	transactions, err := GetAccountTransactions(ctx, accountID)
	if err != nil {
		return nil, err
	}

	overview := &models.JointAccountOverview{
		Account:           *account,
		Transactions:      transactions,
		SpendingBreakdown: []models.CategoryTotal{},
	}
	if account.Status == models.StatusActive {
		overview.SpendingBreakdown = SpendingByCategory(transactions)
	}

	inv, err := GetInvitation(ctx, accountID)
	switch {
	case err == nil:
		overview.Invitation = inv
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	return overview, nil
}
