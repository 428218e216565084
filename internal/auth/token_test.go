package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")

	token, err := GenerateAccessToken(42, true)
	require.NoError(t, err)

	claims, err := ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.StaffID)
	assert.True(t, claims.IsAdmin)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")

	token, err := GenerateAccessToken(42, false)
	require.NoError(t, err)

	_, err = ParseAndValidate(token + "x")
	assert.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")
	token, err := GenerateAccessToken(42, false)
	require.NoError(t, err)

	t.Setenv("AUTH_SECRET", "other-secret")
	_, err = ParseAndValidate(token)
	assert.Error(t, err)
}

func TestGenerateFailsWithoutSecret(t *testing.T) {
	t.Setenv("AUTH_SECRET", "")

	_, err := GenerateAccessToken(1, false)
	assert.Error(t, err)
}
