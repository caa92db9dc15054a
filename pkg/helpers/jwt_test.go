package helpers

import (
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("round-trip-secret", time.Hour)

	token, exp, err := m.Generate(42, "user@example.com", "MEMBER", "Some User")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expiry %v is not in the future", exp)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	id, err := claims.UserID()
	if err != nil {
		t.Fatalf("UserID: %v", err)
	}
	if id != 42 {
		t.Fatalf("subject = %d, want 42", id)
	}
	if claims.Email != "user@example.com" || claims.Role != "MEMBER" || claims.Name != "Some User" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-a", time.Hour)
	verifier := NewJWTManager("secret-b", time.Hour)

	token, _, err := issuer.Generate(1, "a@example.com", "ADMIN", "A")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := verifier.Parse(token); err == nil {
		t.Fatal("expected verification failure with the wrong secret")
	}
}

func TestJWTExpired(t *testing.T) {
	m := NewJWTManager("expired-secret", -time.Minute)

	token, _, err := m.Generate(1, "a@example.com", "MEMBER", "A")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Fatal("expected an expired-token error")
	}
}
