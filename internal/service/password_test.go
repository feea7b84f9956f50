package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/greengarden/greengarden-server/internal/model"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := hashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	require.NoError(t, checkPassword(hash, "secret1"))
	require.ErrorIs(t, checkPassword(hash, "secret2"), model.ErrInvalidCredentials)
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		valid bool
	}{
		{email: "ann@example.com", valid: true},
		{email: "", valid: false},
		{email: "ann", valid: false},
		{email: "Ann <ann@example.com>", valid: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.email, func(t *testing.T) {
			t.Parallel()

			err := validateEmail(tt.email)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, model.ErrValidation)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.ErrorIs(t, validatePassword("12345"), model.ErrValidation)
	assert.NoError(t, validatePassword("123456"))
}
