package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := "test-secret"

	tokenStr, err := GenerateToken(7, "customer", secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ParseToken(tokenStr, secret)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.UserID != 7 || claims.Role != "customer" {
		t.Errorf("claims = %+v, want userId=7 role=customer", claims)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	tokenStr, err := GenerateToken(7, "admin", "right-secret", time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if _, err := ParseToken(tokenStr, "wrong-secret"); err == nil {
		t.Fatal("token accepted with wrong secret")
	}
}

func TestTokenExpired(t *testing.T) {
	tokenStr, err := GenerateToken(7, "customer", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if _, err := ParseToken(tokenStr, "secret"); err == nil {
		t.Fatal("expired token accepted")
	}
}
