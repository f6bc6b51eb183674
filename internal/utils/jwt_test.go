package utils

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "unit-test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken(testSecret, 42, "ah.huat@example.sg", "Ah", "Huat", "SCRAP_DEALER", 15)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	claims, err := ParseAccessToken(testSecret, tok.Token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "ah.huat@example.sg" {
		t.Fatalf("subject = %q, want the submitted email", claims.Subject)
	}
	uid, err := claims.UserID()
	if err != nil {
		t.Fatalf("user id: %v", err)
	}
	if uid != 42 {
		t.Fatalf("user id = %d, want 42", uid)
	}
	if claims.Email != "ah.huat@example.sg" || claims.Role != "SCRAP_DEALER" {
		t.Fatalf("claims not carried through: %+v", claims)
	}
	if claims.FirstName != "Ah" || claims.LastName != "Huat" {
		t.Fatalf("name claims not carried through: %+v", claims)
	}
	if !tok.Exp.After(time.Now()) {
		t.Fatal("expiry should be in the future")
	}
}

func TestParseAccessTokenExpired(t *testing.T) {
	tok, err := NewAccessToken(testSecret, 1, "a@b.c", "A", "B", "CUSTOMER", -1)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	_, err = ParseAccessToken(testSecret, tok.Token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("want ErrTokenExpired, got %v", err)
	}
}

func TestParseAccessTokenInvalid(t *testing.T) {
	tok, err := NewAccessToken(testSecret, 1, "a@b.c", "A", "B", "CUSTOMER", 5)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseAccessToken("wrong-secret", tok.Token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("wrong secret: want ErrTokenInvalid, got %v", err)
	}
	if _, err := ParseAccessToken(testSecret, "not.a.jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("garbage token: want ErrTokenInvalid, got %v", err)
	}
}

func TestUserIDRequiresUIDClaim(t *testing.T) {
	c := &AccessClaims{}
	if _, err := c.UserID(); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("zero uid: want ErrTokenInvalid, got %v", err)
	}
}

func TestRefreshTokenHashing(t *testing.T) {
	rt, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("new refresh token: %v", err)
	}
	if len(rt.Raw) != 96 {
		t.Fatalf("raw length = %d, want 96", len(rt.Raw))
	}
	h1 := HashRefreshRaw(rt.Raw)
	h2 := HashRefreshRaw(rt.Raw)
	if h1 != h2 {
		t.Fatal("hashing must be deterministic")
	}
	if h1 == rt.Raw {
		t.Fatal("hash must differ from the raw token")
	}
	other, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("new refresh token: %v", err)
	}
	if HashRefreshRaw(other.Raw) == h1 {
		t.Fatal("distinct tokens must hash differently")
	}
}
