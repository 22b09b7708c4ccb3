package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/dafibh/lendbook/lendbook-backend/internal/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	// sessionTokenPrefix is the prefix for all session tokens
	sessionTokenPrefix = "lb_"
	// sessionTokenBytes is the number of random bytes in a token (32 bytes = 256 bits)
	sessionTokenBytes = 32
)

// AuthService gates the API behind a single shared PIN. Sessions live in
// memory and are lost on restart.
type AuthService struct {
	pinHash []byte
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*domain.Session // keyed by token hash
}

// NewAuthService hashes the PIN and creates an AuthService
func NewAuthService(pin string, ttl time.Duration) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash pin: %w", err)
	}
	return &AuthService{
		pinHash:  hash,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*domain.Session),
	}, nil
}

// Login checks the PIN and opens a session. The returned session carries
// the only copy of its token.
func (s *AuthService) Login(pin string) (*domain.Session, error) {
	if err := bcrypt.CompareHashAndPassword(s.pinHash, []byte(pin)); err != nil {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		log.Warn().Msg("Login rejected: invalid PIN")
		return nil, domain.ErrInvalidPIN
	}

	token, err := generateSessionToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	now := s.now()
	session := &domain.Session{
		ID:        uuid.New(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.pruneLocked(now)
	s.sessions[hashSessionToken(token)] = session
	s.mu.Unlock()

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	log.Info().Str("session_id", session.ID.String()).Time("expires_at", session.ExpiresAt).Msg("Session opened")

	issued := *session
	issued.Token = token
	return &issued, nil
}

// Validate returns the live session for token
func (s *AuthService) Validate(token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	key := hashSessionToken(token)

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[key]
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if session.Expired(s.now()) {
		delete(s.sessions, key)
		return nil, domain.ErrSessionExpired
	}
	return session, nil
}

// Logout drops the session; unknown tokens are ignored
func (s *AuthService) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[hashSessionToken(token)]; ok {
		delete(s.sessions, hashSessionToken(token))
		log.Info().Str("session_id", session.ID.String()).Msg("Session closed")
	}
}

// ActiveSessions counts sessions that have not expired
func (s *AuthService) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked(s.now())
	return len(s.sessions)
}

func (s *AuthService) pruneLocked(now time.Time) {
	for key, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, key)
		}
	}
}

// generateSessionToken creates a cryptographically secure random token
func generateSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return sessionTokenPrefix + base64.RawURLEncoding.EncodeToString(b), nil
}

// hashSessionToken creates a SHA-256 hash of the token
func hashSessionToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(hash[:])
}
