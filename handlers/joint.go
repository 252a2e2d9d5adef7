package handlers

import (
	"net/http"

	"jointbank/backend/models"
	"jointbank/backend/services"

	"github.com/gorilla/mux"
)

type createJointAccountResponse struct {
	Account    *models.Account    `json:"account"`
	Invitation *models.Invitation `json:"invitation"`
}

// GetCreationSteps handles GET /joint-accounts/steps
func GetCreationSteps(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, services.CreationSteps())
}

// ValidateJointAccount handles POST /joint-accounts/validate, the first step
// of the creation flow
func ValidateJointAccount(w http.ResponseWriter, r *http.Request) {
	var details models.JointAccountDetails
	if err := decodeJSON(r, &details); err != nil {
		writeError(w, r, err)
		return
	}

	details, err := services.ValidateAccountDetails(details)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

// CreateJointAccount handles POST /joint-accounts
func CreateJointAccount(w http.ResponseWriter, r *http.Request) {
	var req models.JointAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	account, invitation, err := services.CreateJointAccount(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createJointAccountResponse{Account: account, Invitation: invitation})
}

// GetJointAccount handles GET /joint-accounts/{id}
func GetJointAccount(w http.ResponseWriter, r *http.Request) {
	overview, err := services.GetJointAccountOverview(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

// ResendInvitation handles POST /joint-accounts/{id}/invitation/resend
func ResendInvitation(w http.ResponseWriter, r *http.Request) {
	invitation, err := services.ResendInvitation(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, invitation)
}

// AcceptInvitation handles POST /joint-accounts/{id}/invitation/accept
func AcceptInvitation(w http.ResponseWriter, r *http.Request) {
	account, err := services.AcceptInvitation(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}
