package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")

	before := time.Now().Unix()
	token, expiresAt, err := svc.GenerateAccessToken(42, "ana@example.com", "HR")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.GreaterOrEqual(t, expiresAt, before+3600)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "42", decoded.Subject())

	email, ok := decoded.Get("email")
	require.True(t, ok)
	assert.Equal(t, "ana@example.com", email)

	role, ok := decoded.Get("role")
	require.True(t, ok)
	assert.Equal(t, "HR", role)
}

func TestGenerateAccessToken_InvalidDuration(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "forever")

	_, _, err := svc.GenerateAccessToken(1, "a@example.com", "ADMIN")
	assert.Error(t, err)
}

func TestDecode_RejectsForeignSignature(t *testing.T) {
	issuer := NewJWTService("secret-one", "1h")
	verifier := NewJWTService("secret-two", "1h")

	token, _, err := issuer.GenerateAccessToken(7, "b@example.com", "EMPLOYEE")
	require.NoError(t, err)

	_, err = verifier.JWTAuth().Decode(token)
	assert.Error(t, err)
}
