package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hostel-admin-pass")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "hostel-admin-pass", hash)

	assert.True(t, VerifyPassword(hash, "hostel-admin-pass"))
	assert.False(t, VerifyPassword(hash, "wrong-password"))
}
