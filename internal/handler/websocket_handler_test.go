package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/dafibh/lendbook/lendbook-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// mockSessionValidator is a test double for session validation
type mockSessionValidator struct {
	session *domain.Session
	err     error
}

func (m *mockSessionValidator) Validate(token string) (*domain.Session, error) {
	return m.session, m.err
}

var testAllowedOrigins = []string{"http://localhost:3000", "https://lendbook.app"}

func TestWebSocketHandler_HandleWS_MissingToken(t *testing.T) {
	e := echo.New()
	hub := websocket.NewHub()
	validator := &mockSessionValidator{session: &domain.Session{ID: uuid.New()}}
	h := NewWebSocketHandler(hub, validator, testAllowedOrigins)

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.HandleWS(c)

	assert.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestWebSocketHandler_HandleWS_InvalidToken(t *testing.T) {
	e := echo.New()
	hub := websocket.NewHub()
	validator := &mockSessionValidator{err: domain.ErrUnauthorized}
	h := NewWebSocketHandler(hub, validator, testAllowedOrigins)

	req := httptest.NewRequest(http.MethodGet, "/ws?token=lb_invalid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.HandleWS(c)

	assert.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestWebSocketHandler_HandleWS_UnknownEntity(t *testing.T) {
	e := echo.New()
	hub := websocket.NewHub()
	validator := &mockSessionValidator{session: &domain.Session{ID: uuid.New()}}
	h := NewWebSocketHandler(hub, validator, testAllowedOrigins)

	req := httptest.NewRequest(http.MethodGet, "/ws?token=lb_valid&entities=loan,budget", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.HandleWS(c)

	assert.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestWebSocketHandler_HandleWS_ValidToken_NoUpgrade(t *testing.T) {
	e := echo.New()
	hub := websocket.NewHub()
	validator := &mockSessionValidator{session: &domain.Session{ID: uuid.New()}}
	h := NewWebSocketHandler(hub, validator, testAllowedOrigins)

	// Request with valid token but not a WebSocket upgrade request
	req := httptest.NewRequest(http.MethodGet, "/ws?token=lb_valid&entities=loan,adjustment", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.HandleWS(c)

	// gorilla/websocket fails the upgrade without upgrade headers; auth passed first
	assert.Error(t, err)
	assert.NotContains(t, err.Error(), "invalid token")
	assert.Equal(t, 0, hub.ClientCount())
}

func TestParseEntities(t *testing.T) {
	entities, ok := parseEntities("")
	assert.True(t, ok)
	assert.Nil(t, entities)

	entities, ok = parseEntities("loan, chit_schedule")
	assert.True(t, ok)
	assert.Equal(t, []websocket.EntityType{websocket.EntityTypeLoan, websocket.EntityTypeScheduleLine}, entities)

	_, ok = parseEntities("loan,nope")
	assert.False(t, ok)
}

func TestWebSocketHandler_CheckOrigin(t *testing.T) {
	hub := websocket.NewHub()
	validator := &mockSessionValidator{}
	h := NewWebSocketHandler(hub, validator, testAllowedOrigins)

	tests := []struct {
		name     string
		origin   string
		expected bool
	}{
		{"allowed origin", "http://localhost:3000", true},
		{"allowed origin https", "https://lendbook.app", true},
		{"disallowed origin", "https://evil.com", false},
		{"empty origin (same-origin)", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ws", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			result := h.checkOrigin(req)
			assert.Equal(t, tt.expected, result)
		})
	}
}
