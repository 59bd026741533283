// Package testutil wires an in-memory database and test tokens for handler
// tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"quotedrop/config"
	"quotedrop/database"
	"quotedrop/internal/app/http/middleware"
	"quotedrop/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
)

const JWTSecret = "test-secret"

// Setup installs a fresh in-memory database and test settings, restoring the
// previous ones when the test ends.
func Setup(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	prevDB, prevSettings, prevURL := database.DB, config.Settings, config.AppURL
	t.Cleanup(func() {
		database.DB, config.Settings, config.AppURL = prevDB, prevSettings, prevURL
	})

	db, err := database.Open(sqlite.Open(":memory:"))
	require.NoError(t, err)
	database.DB = db
	config.Settings = &config.Config{JWTSecret: JWTSecret}
	config.AppURL = "https://quotedrop.test"
}

// CreateUser stores a user and returns it with a bearer token.
func CreateUser(t *testing.T, u users.User) (users.User, string) {
	t.Helper()
	if u.Role == "" {
		u.Role = users.RoleUser
	}
	if u.Tier == "" {
		u.Tier = "free"
	}
	require.NoError(t, database.DB.Create(&u).Error)

	token, err := middleware.IssueToken(u.ID, u.Email, u.Role)
	require.NoError(t, err)
	return u, token
}

// Do runs a request against r. body is JSON-encoded unless it is nil.
func Do(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Decode unmarshals a JSON response body.
func Decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}
