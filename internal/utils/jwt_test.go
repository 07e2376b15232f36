package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("test-secret", 42, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("test-secret", 42, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	token, err := GenerateToken("test-secret", 42, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("test-secret", token)
	assert.Error(t, err)
}
