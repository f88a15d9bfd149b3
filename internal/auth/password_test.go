package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Abcdef1!")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Abcdef1!", hash)

	assert.True(t, VerifyPassword("Abcdef1!", hash))
	assert.False(t, VerifyPassword("Abcdef1?", hash))
	assert.False(t, VerifyPassword("", hash))
	assert.False(t, VerifyPassword("Abcdef1!", "not-a-bcrypt-hash"))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	h1, err := HashPassword("Abcdef1!")
	assert.NoError(t, err)
	h2, err := HashPassword("Abcdef1!")
	assert.NoError(t, err)
	assert.NotEqual(t, h1, h2)
	assert.True(t, VerifyPassword("Abcdef1!", h1))
	assert.True(t, VerifyPassword("Abcdef1!", h2))
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name       string
		password   string
		valid      bool
		wantErrors []string
	}{
		{
			name:     "valid password",
			password: "Abcdef1!",
			valid:    true,
		},
		{
			name:     "too short",
			password: "Abc1!de",
			valid:    false,
			wantErrors: []string{
				"A senha deve ter no mínimo 8 caracteres",
			},
		},
		{
			name:     "seven accented characters is still too short",
			password: "Àbcdé1!",
			valid:    false,
			wantErrors: []string{
				"A senha deve ter no mínimo 8 caracteres",
			},
		},
		{
			name:     "eight characters with accents is long enough",
			password: "Àbcdéf1!",
			valid:    true,
		},
		{
			name:     "no uppercase",
			password: "abcdefg1!",
			valid:    false,
			wantErrors: []string{
				"A senha deve conter pelo menos uma letra maiúscula",
			},
		},
		{
			name:     "no digit",
			password: "Abcdefgh!",
			valid:    false,
			wantErrors: []string{
				"A senha deve conter pelo menos um número",
			},
		},
		{
			name:     "no special character",
			password: "Abcdefg1",
			valid:    false,
			wantErrors: []string{
				"A senha deve conter pelo menos um caractere especial",
			},
		},
		{
			name:     "empty collects every rule in order",
			password: "",
			valid:    false,
			wantErrors: []string{
				"A senha deve ter no mínimo 8 caracteres",
				"A senha deve conter pelo menos uma letra minúscula",
				"A senha deve conter pelo menos uma letra maiúscula",
				"A senha deve conter pelo menos um número",
				"A senha deve conter pelo menos um caractere especial",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidatePasswordStrength(tt.password)
			assert.Equal(t, tt.valid, result.Valid)
			if tt.valid {
				assert.Empty(t, result.Errors)
			} else {
				assert.Equal(t, tt.wantErrors, result.Errors)
			}
		})
	}
}
