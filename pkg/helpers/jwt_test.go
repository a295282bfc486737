package helpers

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	token, exp, err := tm.Generate(42, "alice@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatalf("expiry in the past: %v", exp)
	}

	claims, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "alice@example.com" {
		t.Errorf("claims = (%d, %s), want (42, alice@example.com)", claims.UserID, claims.Email)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", time.Hour).Generate(1, "a@b.c")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := NewTokenManager("secret-b", time.Hour).Parse(token); err == nil {
		t.Fatal("expected parse failure with wrong secret")
	}
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager("secret", -time.Minute)
	token, _, err := tm.Generate(1, "a@b.c")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := tm.Parse(token); err == nil {
		t.Fatal("expected parse failure for expired token")
	}
}

func TestTokenGarbage(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	if _, err := tm.Parse("not.a.jwt"); err == nil {
		t.Fatal("expected parse failure for garbage input")
	}
}
