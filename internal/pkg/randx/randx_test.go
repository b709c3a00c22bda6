package randx

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountHandle(t *testing.T) {
	handle := AccountHandle()

	_, err := uuid.Parse(handle)
	assert.NoError(t, err)
	assert.NotEqual(t, handle, AccountHandle())
}

func TestTokenNonce(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		nonce, err := TokenNonce()
		require.NoError(t, err)
		assert.True(t, IsValidTokenNonce(nonce))
		assert.False(t, seen[nonce])
		seen[nonce] = true
	}
}

func TestIsValidTokenNonce(t *testing.T) {
	assert.False(t, IsValidTokenNonce(""))
	assert.False(t, IsValidTokenNonce("short"))
	assert.False(t, IsValidTokenNonce("has spaces in it!"))
	assert.True(t, IsValidTokenNonce("0123456789abcdef"))
}
