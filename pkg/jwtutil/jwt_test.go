package jwtutil

import (
	"testing"
	"time"

	"github.com/dataria445/Monsta/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUtil() *JWTUtil {
	return NewJWTUtil(&config.JWTConfig{
		AccessSigningKey:  "access-secret",
		RefreshSigningKey: "refresh-secret",
		AccessExpiry:      time.Hour,
		RefreshExpiry:     24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	j := newTestUtil()

	token, err := j.GenerateAccessToken(42, "walter@example.com", "walter", "Walter Test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "walter@example.com", claims.Email)
	assert.Equal(t, "walter", claims.Username)
	assert.Equal(t, "Walter Test", claims.Fullname)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	j := newTestUtil()

	token, err := j.GenerateRefreshToken(42)
	require.NoError(t, err)

	claims, err := j.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestTokenKindsAreNotInterchangeable(t *testing.T) {
	j := newTestUtil()

	accessToken, err := j.GenerateAccessToken(42, "walter@example.com", "walter", "Walter Test")
	require.NoError(t, err)
	refreshToken, err := j.GenerateRefreshToken(42)
	require.NoError(t, err)

	_, err = j.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
	_, err = j.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	j := NewJWTUtil(&config.JWTConfig{
		AccessSigningKey:  "access-secret",
		RefreshSigningKey: "refresh-secret",
		AccessExpiry:      -time.Minute,
		RefreshExpiry:     -time.Minute,
	})

	token, err := j.GenerateAccessToken(42, "walter@example.com", "walter", "Walter Test")
	require.NoError(t, err)

	_, err = j.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	j := newTestUtil()

	token, err := j.GenerateAccessToken(42, "walter@example.com", "walter", "Walter Test")
	require.NoError(t, err)

	_, err = j.ValidateAccessToken(token + "x")
	assert.Error(t, err)
}
