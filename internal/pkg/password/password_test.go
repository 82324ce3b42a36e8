package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("segredo123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "segredo123", hash)

	assert.True(t, Verify("segredo123", hash))
	assert.False(t, Verify("errado123", hash))
	assert.False(t, Verify("segredo123", "not-a-hash"))
}

func TestValidatePassword(t *testing.T) {
	assert.False(t, ValidatePassword(""))
	assert.False(t, ValidatePassword("12345"))
	assert.True(t, ValidatePassword("123456"))
	assert.True(t, ValidatePassword("uma senha bem longa"))
}
