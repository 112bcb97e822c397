package jwtutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("secret", time.Minute, "sess-1")
	require.NoError(t, err)

	claims, err := ParseSessionToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := GenerateSessionToken("secret", time.Minute, "sess-1")
	require.NoError(t, err)

	_, err = ParseSessionToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenExpired(t *testing.T) {
	token, err := GenerateSessionToken("secret", -time.Minute, "sess-1")
	require.NoError(t, err)

	_, err = ParseSessionToken("secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenGarbage(t *testing.T) {
	_, err := ParseSessionToken("secret", "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecodeIdentityClaimsIgnoresSignature(t *testing.T) {
	// Signed with a key the console never sees; the decode must still work
	// because the payload is display-only.
	provider := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "grace@example.com",
		"name":  "Grace",
	})
	token, err := provider.SignedString([]byte("provider-private-key"))
	require.NoError(t, err)

	identity, err := DecodeIdentityClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", identity.Email)
	assert.Equal(t, "Grace", identity.Name)
}

func TestDecodeIdentityClaimsEmptyPayload(t *testing.T) {
	provider := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "123"})
	token, err := provider.SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = DecodeIdentityClaims(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
