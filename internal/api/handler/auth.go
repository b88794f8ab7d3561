// internal/api/handler/auth.go
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"banktransfer/internal/service"
	"banktransfer/internal/util"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: svc,
		logger:  logger,
	}
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates a user and returns a signed token.
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, fmt.Errorf("%w: malformed request body", util.ErrInvalidInput))
		return
	}

	result, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		loginsTotal.WithLabelValues("failure").Inc()
		respondWithError(h.logger, w, err)
		return
	}

	loginsTotal.WithLabelValues("success").Inc()
	respondWithJSON(h.logger, w, http.StatusOK, result)
}
