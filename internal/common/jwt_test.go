package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, "u-1", "clerk|abc")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "clerk|abc", claims.ExternalID)
	assert.Equal(t, "ripple", claims.Issuer)
}

func TestValidToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("right-secret"), "u-1", "clerk|abc")
	require.NoError(t, err)

	_, err = ValidToken([]byte("wrong-secret"), token)
	assert.Error(t, err)
}

func TestValidToken_Garbage(t *testing.T) {
	_, err := ValidToken([]byte("test-secret"), "not.a.token")
	assert.Error(t, err)
}

func TestValidateDisplayName(t *testing.T) {
	assert.NoError(t, ValidateDisplayName("Alice"))
	assert.Error(t, ValidateDisplayName("   "))

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, ValidateDisplayName(string(long)))
}
