package handlers

import (
	"net/http"

	"jointbank/backend/database"
)

// HealthCheck reports whether the server and its store are reachable
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok", "database": "ok"}
	code := http.StatusOK

	if database.DB == nil {
		status["status"], status["database"] = "degraded", "not initialized"
		code = http.StatusServiceUnavailable
	} else if err := database.DB.PingContext(r.Context()); err != nil {
		status["status"], status["database"] = "degraded", err.Error()
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, status)
}
