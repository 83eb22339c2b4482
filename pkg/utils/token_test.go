package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	issued := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	token, err := GenerateToken("secret", "user-1", "session-1", "mentor", "Ana", "ana@example.com", issued, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken("secret", token, issued.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "session-1", claims.ID)
	assert.Equal(t, "mentor", claims.Role)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, "ana@example.com", claims.Email)

	_, err = ParseToken("secret", token, issued.Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrInvalidToken, "expired")

	_, err = ParseToken("other", token, issued)
	assert.ErrorIs(t, err, ErrInvalidToken, "wrong secret")

	_, err = ParseToken("secret", "not-a-jwt", issued)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.True(t, CheckPasswordHash("secret1", hash))
	assert.False(t, CheckPasswordHash("secret2", hash))
}
