package handlers

import (
	"encoding/json"
	"net/http"

	"outpass-backend/internal/auth"
	"outpass-backend/internal/config"
	"outpass-backend/pkg/utils"
)

type AuthHandler struct {
	cfg        *config.Config
	jwtManager *auth.JWTManager
}

func NewAuthHandler(cfg *config.Config, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{cfg: cfg, jwtManager: jwtManager}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks the submitted credentials against the configured admin
// account and issues a signed token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email != h.cfg.Admin.Email || !auth.VerifyPassword(h.cfg.Admin.PasswordHash, req.Password) {
		utils.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwtManager.GenerateToken(req.Email)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to process admin login")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{
		"message": "Admin login successful!",
		"token":   token,
	})
}
