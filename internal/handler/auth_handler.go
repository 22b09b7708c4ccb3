package handler

import (
	"net/http"
	"time"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/dafibh/lendbook/lendbook-backend/internal/middleware"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// SessionManager issues and drops PIN sessions
type SessionManager interface {
	Login(pin string) (*domain.Session, error)
	Logout(token string)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	sessions SessionManager
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(sessions SessionManager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	PIN string `json:"pin"`
}

// LoginResponse carries the session token returned once at login
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// Login exchanges the operator PIN for a session token
// @Summary Log in with the operator PIN
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "PIN"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.PIN == "" {
		return fieldError(c, "pin", "PIN is required")
	}

	session, err := h.sessions.Login(req.PIN)
	if err != nil {
		log.Warn().Str("ip", c.RealIP()).Msg("Login rejected")
		return respondError(c, err, "log in")
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
	})
}

// Logout drops the caller's session
// @Summary Log out
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} ProblemDetails
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout(middleware.GetToken(c))
	return c.NoContent(http.StatusNoContent)
}
