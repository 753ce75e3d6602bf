package oauth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() GoogleService {
	return NewGoogleService(
		"client-id",
		"client-secret",
		"http://localhost:8080/api/v1/auth/oauth/callback/google",
		[]string{"email"},
	)
}

func TestGenerateState(t *testing.T) {
	svc := newTestService()

	first := svc.GenerateState()
	second := svc.GenerateState()

	require.NotEmpty(t, first)
	assert.NotEqual(t, first, second)

	raw, err := base64.RawURLEncoding.DecodeString(first)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestRedirectURLCarriesState(t *testing.T) {
	svc := newTestService()
	state := svc.GenerateState()

	redirect := svc.RedirectURL(state)

	assert.Contains(t, redirect, "client_id=client-id")
	assert.Contains(t, redirect, "state="+state)
}
