package api

import (
	"net/http"

	"jointbank/backend/handlers"
	"jointbank/backend/middleware"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Options configures the middleware around the API routes
type Options struct {
	AllowedOrigins []string
	Development    bool
	Logger         zerolog.Logger
}

// Server represents the API server
type Server struct {
	router *mux.Router
}

// NewServer creates a new API server with every route registered
func NewServer(opts Options) *Server {
	s := &Server{router: mux.NewRouter()}

	s.router.Use(middleware.RequestLogger(opts.Logger))
	s.router.Use(middleware.CORS(opts.AllowedOrigins, opts.Development))
	s.router.Use(middleware.Compress)

	// Routes are served with and without the /api prefix
	apiRouter := s.router.PathPrefix("/api").Subrouter()
	registerRoutes(apiRouter)
	registerRoutes(s.router)

	return s
}

// registerRoutes sets up all API routes
func registerRoutes(r *mux.Router) {
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET", "OPTIONS")

	// Accounts
	r.HandleFunc("/dashboard", handlers.GetDashboard).Methods("GET", "OPTIONS")
	r.HandleFunc("/accounts/{id}/transactions", handlers.GetAccountTransactions).Methods("GET", "OPTIONS")

	// Joint account creation flow
	r.HandleFunc("/joint-accounts/steps", handlers.GetCreationSteps).Methods("GET", "OPTIONS")
	r.HandleFunc("/joint-accounts/validate", handlers.ValidateJointAccount).Methods("POST", "OPTIONS")
	r.HandleFunc("/joint-accounts", handlers.CreateJointAccount).Methods("POST", "OPTIONS")
	r.HandleFunc("/joint-accounts/{id}", handlers.GetJointAccount).Methods("GET", "OPTIONS")
	r.HandleFunc("/joint-accounts/{id}/invitation/resend", handlers.ResendInvitation).Methods("POST", "OPTIONS")
	r.HandleFunc("/joint-accounts/{id}/invitation/accept", handlers.AcceptInvitation).Methods("POST", "OPTIONS")

	// Permission rule engine
	r.HandleFunc("/permissions/roles", handlers.GetRoles).Methods("GET", "OPTIONS")
	r.HandleFunc("/permissions/defaults", handlers.GetDefaultPermissions).Methods("GET", "OPTIONS")
	r.HandleFunc("/permissions/role", handlers.ApplyRole).Methods("POST", "OPTIONS")
	r.HandleFunc("/permissions/flag", handlers.SetFlag).Methods("POST", "OPTIONS")
	r.HandleFunc("/permissions/spending-limit", handlers.SetSpendingLimit).Methods("POST", "OPTIONS")
}

// Handler returns the HTTP handler for the API server
func (s *Server) Handler() http.Handler {
	return s.router
}
