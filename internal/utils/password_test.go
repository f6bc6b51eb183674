package utils

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name string
		pass string
		ok   bool
	}{
		{"valid", "Str0ng!pass", true},
		{"too short", "S1!a", false},
		{"no upper", "weak1pass!", false},
		{"no lower", "WEAK1PASS!", false},
		{"no digit", "Weakpass!!", false},
		{"no special", "Weakpass11", false},
		{"space is not special", "Weak pass11", false},
		{"control char is not special", "Weak\tpass11", false},
		{"symbol counts as special", "Weak+pass11", true},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassword(tc.pass)
			if tc.ok && err != nil {
				t.Fatalf("expected %q to pass, got %v", tc.pass, err)
			}
			if !tc.ok && !errors.Is(err, ErrWeakPassword) {
				t.Fatalf("expected ErrWeakPassword for %q, got %v", tc.pass, err)
			}
		})
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "Str0ng!pass" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !VerifyPassword(hash, "Str0ng!pass") {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword(hash, "wrong-password") {
		t.Fatal("wrong password accepted")
	}
}
