package service

import (
	"strings"
	"testing"
	"time"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T, ttl time.Duration) (*AuthService, *time.Time) {
	t.Helper()
	svc, err := NewAuthService("2468", ttl)
	require.NoError(t, err)
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, &now
}

func TestAuthService_Login(t *testing.T) {
	svc, now := newTestAuthService(t, time.Hour)

	session, err := svc.Login("2468")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(session.Token, sessionTokenPrefix))
	assert.Equal(t, now.Add(time.Hour), session.ExpiresAt)

	got, err := svc.Validate(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Empty(t, got.Token, "stored sessions never keep the token")
}

func TestAuthService_Login_WrongPIN(t *testing.T) {
	svc, _ := newTestAuthService(t, time.Hour)

	_, err := svc.Login("1111")
	assert.ErrorIs(t, err, domain.ErrInvalidPIN)
	assert.Equal(t, 0, svc.ActiveSessions())
}

func TestAuthService_Validate(t *testing.T) {
	svc, now := newTestAuthService(t, time.Hour)
	session, err := svc.Login("2468")
	require.NoError(t, err)

	_, err = svc.Validate("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = svc.Validate("lb_unknown")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	*now = now.Add(time.Hour)
	_, err = svc.Validate(session.Token)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)

	_, err = svc.Validate(session.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "expired sessions are dropped")
}

func TestAuthService_Logout(t *testing.T) {
	svc, _ := newTestAuthService(t, time.Hour)
	first, err := svc.Login("2468")
	require.NoError(t, err)
	second, err := svc.Login("2468")
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)
	assert.Equal(t, 2, svc.ActiveSessions())

	svc.Logout(first.Token)
	svc.Logout("lb_unknown")

	_, err = svc.Validate(first.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = svc.Validate(second.Token)
	assert.NoError(t, err)
}

func TestAuthService_PrunesExpiredSessionsOnLogin(t *testing.T) {
	svc, now := newTestAuthService(t, time.Minute)
	_, err := svc.Login("2468")
	require.NoError(t, err)

	*now = now.Add(2 * time.Minute)
	_, err = svc.Login("2468")
	require.NoError(t, err)

	assert.Equal(t, 1, svc.ActiveSessions())
}
