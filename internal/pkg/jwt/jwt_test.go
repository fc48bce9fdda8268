package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, expiresAt, err := svc.GenerateAccessToken("emp-1", "11111111", true)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "emp-1", claims[ClaimEmployeeID])
	assert.Equal(t, "11111111", claims[ClaimCedula])
	assert.Equal(t, true, claims[ClaimIsAdmin])
	assert.Equal(t, TokenTypeAccess, claims[ClaimType])
}

func TestDecode_WrongSecretFails(t *testing.T) {
	token, _, err := NewJWTService("one", time.Hour).GenerateAccessToken("emp-1", "11111111", false)
	require.NoError(t, err)

	_, err = NewJWTService("two", time.Hour).JWTAuth().Decode(token)
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	assert.False(t, svc.IsTokenRevoked("abc"))
	svc.RevokeToken("abc", time.Now().Add(time.Hour).Unix())
	assert.True(t, svc.IsTokenRevoked("abc"))

	// Expired entries are pruned on the next revocation.
	svc.RevokeToken("old", time.Now().Add(-time.Minute).Unix())
	svc.RevokeToken("new", time.Now().Add(time.Hour).Unix())
	assert.False(t, svc.IsTokenRevoked("old"))
	assert.True(t, svc.IsTokenRevoked("new"))
}

func TestPruneRevokedTokens(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	now := time.Now()

	svc.RevokeToken("live", now.Add(time.Hour).Unix())
	svc.RevokeToken("stale", now.Add(-time.Minute).Unix())

	assert.Equal(t, 1, svc.PruneRevokedTokens())
	assert.False(t, svc.IsTokenRevoked("stale"))
	assert.True(t, svc.IsTokenRevoked("live"))
	assert.Equal(t, 0, svc.PruneRevokedTokens())
}
