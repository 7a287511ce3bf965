package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	JwtKey = []byte("test-secret")

	token, err := GenerateJWT("user-123", "student@campus.edu", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "student@campus.edu", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestParseJWTRejectsTamperedToken(t *testing.T) {
	JwtKey = []byte("test-secret")

	token, err := GenerateJWT("user-123", "student@campus.edu", false)
	require.NoError(t, err)

	_, err = ParseJWT(token + "x")
	assert.Error(t, err)
}

func TestParseJWTRejectsWrongKey(t *testing.T) {
	JwtKey = []byte("test-secret")
	token, err := GenerateJWT("user-123", "student@campus.edu", false)
	require.NoError(t, err)

	JwtKey = []byte("another-secret")
	_, err = ParseJWT(token)
	assert.Error(t, err)
}
