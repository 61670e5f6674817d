package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inflybi/warehouse/internal/auth"
)

func TestHashPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	// A fresh salt every call, so two hashes of the same password differ.
	other, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	ok, err := auth.VerifyPassword(hash, "s3cret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = auth.VerifyPassword(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{name: "Empty", encoded: ""},
		{name: "NotArgon", encoded: "$2a$10$abcdefghijklmnopqrstuv"},
		{name: "MissingKeySegment", encoded: "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA"},
		{name: "BadBase64", encoded: "$argon2id$v=19$m=65536,t=3,p=4$!!!$!!!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.VerifyPassword(tc.encoded, "s3cret")
			assert.Error(t, err)
		})
	}
}
