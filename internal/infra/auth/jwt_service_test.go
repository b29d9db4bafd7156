package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehiclee/config"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(newTestConfig(""))
	require.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateToken(userID, "client")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "client", claims.Role)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	issuer, err := NewJWTService(newTestConfig("issuer-secret"))
	require.NoError(t, err)

	verifier, err := NewJWTService(newTestConfig("other-secret"))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
