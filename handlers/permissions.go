package handlers

import (
	"fmt"
	"net/http"

	"jointbank/backend/models"
	"jointbank/backend/services"

	"github.com/shopspring/decimal"
)

// permissionsResponse returns the updated permission set together with the
// form controls it implies
type permissionsResponse struct {
	Permissions models.Permissions        `json:"permissions"`
	Controls    models.PermissionControls `json:"controls"`
}

func respondPermissions(w http.ResponseWriter, p models.Permissions) {
	writeJSON(w, http.StatusOK, permissionsResponse{Permissions: p, Controls: services.Controls(p)})
}

// GetRoles handles GET /permissions/roles
func GetRoles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, services.Rules())
}

// GetDefaultPermissions handles GET /permissions/defaults
func GetDefaultPermissions(w http.ResponseWriter, r *http.Request) {
	respondPermissions(w, services.DefaultInvitePermissions())
}

// ApplyRole handles POST /permissions/role
func ApplyRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Permissions models.Permissions `json:"permissions"`
		Role        string             `json:"role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	role, err := services.ParseRole(req.Role)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondPermissions(w, services.ApplyRole(req.Permissions, role))
}

// SetFlag handles POST /permissions/flag. Fields the current role locks are
// rejected with 409.
func SetFlag(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Permissions models.Permissions `json:"permissions"`
		Field       string             `json:"field"`
		Value       *bool              `json:"value"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := services.ParseRole(string(req.Permissions.Role)); err != nil {
		writeError(w, r, err)
		return
	}
	field, err := services.ParsePermissionField(req.Field)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if req.Value == nil {
		writeError(w, r, fmt.Errorf("%w: value is required", services.ErrInvalidInput))
		return
	}
	if !services.IsEditable(req.Permissions, field) {
		writeError(w, r, fmt.Errorf("%w: %s cannot be changed for role %q", services.ErrConflict, field, req.Permissions.Role))
		return
	}
	respondPermissions(w, services.SetFlag(req.Permissions, field, *req.Value))
}

// SetSpendingLimit handles POST /permissions/spending-limit
func SetSpendingLimit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Permissions models.Permissions `json:"permissions"`
		Amount      *decimal.Decimal   `json:"amount"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if _, err := services.ParseRole(string(req.Permissions.Role)); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Amount == nil {
		writeError(w, r, fmt.Errorf("%w: amount is required", services.ErrInvalidInput))
		return
	}
	respondPermissions(w, services.SetSpendingLimit(req.Permissions, *req.Amount))
}
