package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := NewAdminToken("test-secret", "admin@example.com", 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := VerifyAdminToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", email)
}

func TestVerifyAdminTokenWrongSecret(t *testing.T) {
	token, err := NewAdminToken("test-secret", "admin@example.com", 1)
	require.NoError(t, err)

	_, err = VerifyAdminToken("other-secret", token)
	assert.Error(t, err)
}

func TestVerifyAdminTokenGarbage(t *testing.T) {
	_, err := VerifyAdminToken("test-secret", "not-a-token")
	assert.Error(t, err)
}

func TestVerifyAdminTokenExpired(t *testing.T) {
	token, err := NewAdminToken("test-secret", "admin@example.com", -1)
	require.NoError(t, err)

	_, err = VerifyAdminToken("test-secret", token)
	assert.Error(t, err)
}
