package auth

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// specialChars is the fixed punctuation set the strength policy accepts.
const specialChars = `!@#$%^&*(),.?":{}|<>`

// HashPassword produces a salted bcrypt hash. Safe for concurrent use.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether password matches hash. A non-matching input
// is simply false, never an error.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// StrengthResult is the outcome of the strong-password policy check.
type StrengthResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidatePasswordStrength checks the strong-password policy: minimum length,
// then presence of a lowercase letter, an uppercase letter, a digit and a
// special character. All failing rules are collected in order so callers can
// show one or all of them.
func ValidatePasswordStrength(password string) StrengthResult {
	var errs []string

	// length in characters, not bytes, so accented letters count once
	if utf8.RuneCountInString(password) < 8 {
		errs = append(errs, "A senha deve ter no mínimo 8 caracteres")
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}

	if !hasLower {
		errs = append(errs, "A senha deve conter pelo menos uma letra minúscula")
	}
	if !hasUpper {
		errs = append(errs, "A senha deve conter pelo menos uma letra maiúscula")
	}
	if !hasDigit {
		errs = append(errs, "A senha deve conter pelo menos um número")
	}
	if !hasSpecial {
		errs = append(errs, "A senha deve conter pelo menos um caractere especial")
	}

	return StrengthResult{Valid: len(errs) == 0, Errors: errs}
}
