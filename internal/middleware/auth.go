package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// SessionKey is the context key for the authenticated session
	SessionKey contextKey = "session"
	// TokenKey is the context key for the raw session token
	TokenKey contextKey = "session_token"
)

// SessionValidator resolves a session token to a live session
type SessionValidator interface {
	Validate(token string) (*domain.Session, error)
}

// AuthMiddleware requires a valid PIN session on every request
type AuthMiddleware struct {
	sessions SessionValidator
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions SessionValidator) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate returns an Echo middleware that validates session tokens
func (m *AuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := BearerToken(c)
			if !ok {
				return unauthorizedError(c, "missing or malformed authorization header")
			}

			session, err := m.sessions.Validate(token)
			if err != nil {
				log.Debug().Err(err).Msg("Session validation failed")
				if errors.Is(err, domain.ErrSessionExpired) {
					return unauthorizedError(c, "session expired")
				}
				return unauthorizedError(c, "invalid session")
			}

			ctx := context.WithValue(c.Request().Context(), SessionKey, session)
			ctx = context.WithValue(ctx, TokenKey, token)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// BearerToken extracts the token from an "Authorization: Bearer" header
func BearerToken(c echo.Context) (string, bool) {
	parts := strings.SplitN(c.Request().Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// GetSession retrieves the authenticated session from the echo context
func GetSession(c echo.Context) *domain.Session {
	session, _ := c.Request().Context().Value(SessionKey).(*domain.Session)
	return session
}

// GetToken retrieves the raw session token from the echo context
func GetToken(c echo.Context) string {
	token, _ := c.Request().Context().Value(TokenKey).(string)
	return token
}
