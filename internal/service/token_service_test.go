package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundhaus/locale-service/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecretKey:   "test-secret-key-for-tokens",
		AccessTokenTTL: 15 * time.Minute,
	}
}

// TestTokenService_IssueAndValidate tests the token round trip.
func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService(testAuthConfig())

	token, expiresIn, err := svc.IssueAdminToken("admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(900), expiresIn)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "admin", claims.Scope)
}

// TestTokenService_ValidateAccessToken tests rejection paths.
func TestTokenService_ValidateAccessToken(t *testing.T) {
	svc := NewTokenService(testAuthConfig())

	t.Run("garbage token", func(t *testing.T) {
		claims, err := svc.ValidateAccessToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with a different key", func(t *testing.T) {
		other := NewTokenService(config.AuthConfig{
			JWTSecretKey:   "a-completely-different-key",
			AccessTokenTTL: 15 * time.Minute,
		})
		token, _, err := other.IssueAdminToken("admin")
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewTokenService(config.AuthConfig{
			JWTSecretKey:   "test-secret-key-for-tokens",
			AccessTokenTTL: -time.Minute,
		})
		token, _, err := expired.IssueAdminToken("admin")
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
