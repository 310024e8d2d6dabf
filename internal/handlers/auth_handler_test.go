package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outpass-backend/internal/auth"
	"outpass-backend/internal/config"
)

func newAuthHandlerForTest(t *testing.T) (*AuthHandler, *auth.JWTManager) {
	t.Helper()

	hash, err := auth.HashPassword("warden-pass")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "outpass-backend"
	cfg.Admin.Email = "warden@hostel.edu"
	cfg.Admin.PasswordHash = hash

	jwtManager := auth.NewJWTManager(cfg)
	return NewAuthHandler(cfg, jwtManager), jwtManager
}

func postLogin(handler *AuthHandler, email, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)
	return rec
}

func TestLogin_ValidCredentials_IssuesToken(t *testing.T) {
	handler, jwtManager := newAuthHandlerForTest(t)

	rec := postLogin(handler, "warden@hostel.edu", "warden-pass")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Admin login successful!", resp["message"])
	require.NotEmpty(t, resp["token"])

	claims, err := jwtManager.ValidateToken(resp["token"])
	require.NoError(t, err)
	assert.Equal(t, "warden@hostel.edu", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	handler, _ := newAuthHandlerForTest(t)

	rec := postLogin(handler, "warden@hostel.edu", "guess")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_UnknownEmail(t *testing.T) {
	handler, _ := newAuthHandlerForTest(t)

	rec := postLogin(handler, "someone@else.edu", "warden-pass")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_MalformedBody(t *testing.T) {
	handler, _ := newAuthHandlerForTest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
