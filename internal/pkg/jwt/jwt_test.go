package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestGenerateAndValidateToken(t *testing.T) {
	token, expiresAt, err := GenerateToken(42, "Maria Silva", "maria@baa.com.br", "Admin", testSecret, "baa-logistica", 8)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), expiresAt, time.Minute)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "Maria Silva", claims.Nome)
	assert.Equal(t, "maria@baa.com.br", claims.Email)
	assert.Equal(t, "Admin", claims.Perfil)
	assert.Equal(t, "baa-logistica", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := GenerateToken(1, "x", "x@x", "Usuario", testSecret, "baa-logistica", 1)
	require.NoError(t, err)

	_, err = ValidateToken(token, "another-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenExpired(t *testing.T) {
	token, _, err := GenerateToken(1, "x", "x@x", "Usuario", testSecret, "baa-logistica", -1)
	require.NoError(t, err)

	_, err = ValidateToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
