package handler

import (
	"net/http"
	"strings"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/dafibh/lendbook/lendbook-backend/internal/websocket"
	ws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// SessionValidator validates session tokens for websocket upgrades
type SessionValidator interface {
	Validate(token string) (*domain.Session, error)
}

// WebSocketHandler handles WebSocket connections
type WebSocketHandler struct {
	hub            *websocket.Hub
	sessions       SessionValidator
	allowedOrigins map[string]bool
	upgrader       ws.Upgrader
}

// NewWebSocketHandler creates a new WebSocketHandler
func NewWebSocketHandler(hub *websocket.Hub, sessions SessionValidator, allowedOrigins []string) *WebSocketHandler {
	// Build origin lookup map
	originMap := make(map[string]bool)
	for _, origin := range allowedOrigins {
		originMap[origin] = true
	}

	h := &WebSocketHandler{
		hub:            hub,
		sessions:       sessions,
		allowedOrigins: originMap,
	}

	h.upgrader = ws.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}

	return h
}

// checkOrigin validates the request origin against allowed origins
func (h *WebSocketHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		// Allow requests with no Origin header (e.g., same-origin or non-browser clients)
		return true
	}

	if h.allowedOrigins[origin] {
		return true
	}

	log.Warn().
		Str("origin", origin).
		Msg("WebSocket connection rejected: origin not allowed")
	return false
}

// parseEntities reads the comma-separated ?entities= subscription list.
// An empty list subscribes to everything.
func parseEntities(raw string) ([]websocket.EntityType, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, true
	}
	var entities []websocket.EntityType
	for _, part := range strings.Split(raw, ",") {
		entity, ok := websocket.ParseEntityType(strings.TrimSpace(part))
		if !ok {
			return nil, false
		}
		entities = append(entities, entity)
	}
	return entities, true
}

// HandleWS handles WebSocket connection requests at GET /ws
// @Summary Subscribe to live ledger events
// @Tags events
// @Param token query string true "Session token"
// @Param entities query string false "Comma-separated entity types"
// @Success 101 "Switching Protocols"
// @Failure 401 {object} ProblemDetails
// @Router /ws [get]
func (h *WebSocketHandler) HandleWS(c echo.Context) error {
	// Get token from query parameter
	token := c.QueryParam("token")
	if token == "" {
		log.Debug().Msg("WebSocket connection rejected: missing token")
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}

	session, err := h.sessions.Validate(token)
	if err != nil {
		log.Debug().Err(err).Msg("WebSocket connection rejected: invalid session")
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	entities, ok := parseEntities(c.QueryParam("entities"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown entity type")
	}

	// Upgrade HTTP connection to WebSocket
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return err
	}

	// Create client and register with hub
	client := websocket.NewClient(conn, session.ID.String(), entities, h.hub)
	h.hub.Register(client)

	log.Info().
		Str("session_id", session.ID.String()).
		Str("client_id", client.ID()).
		Int("entities", len(entities)).
		Msg("WebSocket client connected")

	// Start read/write pumps in goroutines
	go client.WritePump()
	go client.ReadPump()

	return nil
}
