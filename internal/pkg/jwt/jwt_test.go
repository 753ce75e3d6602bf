package jwt

import (
	"context"
	"testing"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewJWTService("test-secret-key", "1h", "168h")
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := newTestService()

	tokenString, expiresAt, err := svc.GenerateAccessToken("u1", "pedro@ferroactiva.cl", user.RoleWorker)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", claims["user_id"])
	assert.Equal(t, "pedro@ferroactiva.cl", claims["email"])
	assert.Equal(t, "worker", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateRefreshToken_Type(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("u1")
	require.NoError(t, err)

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims["type"])
	assert.Equal(t, "u1", claims["user_id"])
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret-key", "not-a-duration", "168h")

	_, _, err := svc.GenerateAccessToken("u1", "pedro@ferroactiva.cl", user.RoleWorker)
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateAccessToken("u1", "pedro@ferroactiva.cl", user.RoleAdmin)
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenString))
	svc.RevokeToken(tokenString)
	assert.True(t, svc.IsTokenRevoked(tokenString))
}
