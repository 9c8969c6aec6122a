package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/config"
)

func newTestJWT() *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWT()
	token, err := svc.GenerateToken("backend")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "backend", claims.GetService())
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestJWT()
	token, err := svc.GenerateToken("backend")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := newTestJWT().GenerateToken("backend")
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "other-secret", ExpirationHours: 1})
	_, err = other.ValidateToken(token)
	require.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_Malformed(t *testing.T) {
	_, err := newTestJWT().ValidateToken("not.a.token")
	require.Error(t, err)

	_, err = newTestJWT().ValidateToken("")
	require.Error(t, err)

	_, err = newTestJWT().GenerateToken("")
	require.Error(t, err)
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	svc := newTestJWT()
	token, err := svc.GenerateToken("batch-worker")
	require.NoError(t, err)

	claims, err := svc.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "batch-worker", claims.GetService())
}
