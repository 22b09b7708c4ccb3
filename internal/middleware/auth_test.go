package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type stubSessions struct {
	sessions map[string]*domain.Session
	err      error
}

func (s *stubSessions) Validate(token string) (*domain.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	session, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return session, nil
}

func TestAuthenticate(t *testing.T) {
	e := echo.New()
	session := &domain.Session{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	tests := []struct {
		name           string
		header         string
		validatorErr   error
		expectedStatus int
		expectedDetail string
	}{
		{
			name:           "valid bearer token",
			header:         "Bearer lb_good",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "lowercase scheme accepted",
			header:         "bearer lb_good",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
			expectedDetail: "missing or malformed authorization header",
		},
		{
			name:           "wrong scheme",
			header:         "Basic abc",
			expectedStatus: http.StatusUnauthorized,
			expectedDetail: "missing or malformed authorization header",
		},
		{
			name:           "unknown token",
			header:         "Bearer lb_bad",
			expectedStatus: http.StatusUnauthorized,
			expectedDetail: "invalid session",
		},
		{
			name:           "expired session",
			header:         "Bearer lb_good",
			validatorErr:   domain.ErrSessionExpired,
			expectedStatus: http.StatusUnauthorized,
			expectedDetail: "session expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &stubSessions{
				sessions: map[string]*domain.Session{"lb_good": session},
				err:      tt.validatorErr,
			}
			m := NewAuthMiddleware(sessions)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/loans", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen *domain.Session
			handler := func(c echo.Context) error {
				seen = GetSession(c)
				return c.String(http.StatusOK, "OK")
			}

			if err := m.Authenticate()(handler)(c); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if rec.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d", tt.expectedStatus, rec.Code)
			}

			if tt.expectedStatus == http.StatusOK {
				if seen != session {
					t.Error("Expected session to be set on the request context")
				}
				return
			}

			var problem problemDetails
			if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
				t.Fatalf("Failed to decode problem details: %v", err)
			}
			if problem.Detail != tt.expectedDetail {
				t.Errorf("Expected detail %q, got %q", tt.expectedDetail, problem.Detail)
			}
			if problem.Type != errorTypeUnauthorized {
				t.Errorf("Expected type %q, got %q", errorTypeUnauthorized, problem.Type)
			}
			if problem.Instance != "/api/v1/loans" {
				t.Errorf("Expected instance /api/v1/loans, got %q", problem.Instance)
			}
		})
	}
}

func TestGetSession(t *testing.T) {
	e := echo.New()

	t.Run("returns session when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		session := &domain.Session{ID: uuid.New()}
		ctx := context.WithValue(c.Request().Context(), SessionKey, session)
		ctx = context.WithValue(ctx, TokenKey, "lb_token")
		c.SetRequest(c.Request().WithContext(ctx))

		if GetSession(c) != session {
			t.Error("Expected stored session")
		}
		if GetToken(c) != "lb_token" {
			t.Errorf("Expected token lb_token, got %q", GetToken(c))
		}
	})

	t.Run("returns nil when not present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if GetSession(c) != nil {
			t.Error("Expected nil session")
		}
		if GetToken(c) != "" {
			t.Errorf("Expected empty token, got %q", GetToken(c))
		}
	})
}
