package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hash)
	assert.True(t, strings.HasPrefix(hash, "pbkdf2:sha256:"))
	assert.NotContains(t, hash, "secret1")

	// Salted: hashing the same password twice must not repeat.
	again, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "secret1"))
	assert.False(t, VerifyPassword(hash, "secret2"))
	assert.False(t, VerifyPassword(hash, "Secret1"))
	assert.False(t, VerifyPassword(hash, ""))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"plaintext", "secret1"},
		{"wrong method", "bcrypt:sha256:600000$abcd$ef01"},
		{"wrong digest", "pbkdf2:md5:600000$abcd$ef01"},
		{"bad iterations", "pbkdf2:sha256:zero$abcd$ef01"},
		{"bad hex", "pbkdf2:sha256:600000$abcd$nothex"},
		{"missing parts", "pbkdf2:sha256:600000$abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, VerifyPassword(tt.encoded, "secret1"))
		})
	}
}
