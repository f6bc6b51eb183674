package utils

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// ErrWeakPassword is returned when a plaintext password fails the
// complexity rules enforced before hashing.
var ErrWeakPassword = errors.New("password must be at least 8 characters and contain upper, lower, digit and special characters")

// ValidatePassword enforces the signup complexity rules: length >= 8 with
// at least one uppercase letter, one lowercase letter, one digit and one
// special character.
func ValidatePassword(plain string) error {
	var upper, lower, digit, special bool
	for _, r := range plain {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	if len(plain) < 8 || !upper || !lower || !digit || !special {
		return ErrWeakPassword
	}
	return nil
}

// HashPassword returns bcrypt hash using the given cost.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares bcrypt hash and plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
