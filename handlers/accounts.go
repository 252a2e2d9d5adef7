package handlers

import (
	"net/http"

	"jointbank/backend/models"
	"jointbank/backend/services"

	"github.com/gorilla/mux"
)

// GetDashboard handles GET /dashboard
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := services.GetDashboard(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

// GetAccountTransactions handles GET /accounts/{id}/transactions. The
// optional search and type query parameters narrow the list.
func GetAccountTransactions(w http.ResponseWriter, r *http.Request) {
	filter, err := services.ParseTypeFilter(r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	transactions, err := services.SearchTransactions(r.Context(), models.TransactionQuery{
		AccountID:  mux.Vars(r)["id"],
		SearchTerm: r.URL.Query().Get("search"),
		FilterType: filter,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, transactions)
}
