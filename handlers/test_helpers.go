package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jointbank/backend/database"
	"jointbank/backend/migrations"
	"jointbank/backend/security"

	"github.com/gorilla/mux"
)

// SetupTestDB opens a fresh in-memory store with the sample data and makes it
// the package-level DB for the duration of the test
func SetupTestDB(t *testing.T) {
	t.Helper()

	db, err := database.Open(database.Config{Driver: database.DriverSQLite, Path: database.MemoryPath})
	if err != nil {
		t.Fatalf("Error opening test database: %v", err)
	}
	database.Use(db, database.DriverSQLite)
	security.InitializeEncryption("handlers-test-key")

	if err := migrations.RunMigrations(db); err != nil {
		t.Fatalf("Error running migrations: %v", err)
	}
	if err := migrations.SeedSampleData(db); err != nil {
		t.Fatalf("Error seeding sample data: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
		database.DB = nil
	})
}

// NewJSONRequest creates a test request with body encoded as JSON
func NewJSONRequest(method, url string, body any) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, url, nil)
	}

	buf, _ := json.Marshal(body)
	req := httptest.NewRequest(method, url, bytes.NewBuffer(buf))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// WithVars sets the mux route variables a handler reads
func WithVars(req *http.Request, vars map[string]string) *http.Request {
	return mux.SetURLVars(req, vars)
}

// serve runs the handler and returns the recorded response
func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h(w, req)
	return w
}
