package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is an operator login. The token itself is returned once at login
// and only its hash is kept.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Token     string    `json:"token,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is no longer valid at now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
