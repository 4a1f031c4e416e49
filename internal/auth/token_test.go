package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsmgr/club-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 15*time.Minute)

	token, expiresAt, err := tm.GenerateAccessToken("user-1", domain.RoleCoach)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, domain.RoleCoach, claims.Role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", time.Minute).GenerateAccessToken("user-1", domain.RolePlayer)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Minute).ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Millisecond)

	token, _, err := tm.GenerateAccessToken("user-1", domain.RolePlayer)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = tm.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Minute)
	_, err := tm.ParseToken("not-a-jwt")
	assert.Error(t, err)
}
