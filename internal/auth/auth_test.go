package auth

import (
	"testing"
	"time"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("open sesame")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword(hash, "open sesame") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "open sesame!") {
		t.Fatal("wrong password accepted")
	}
	if CheckPassword("not a bcrypt hash", "open sesame") {
		t.Fatal("garbage hash accepted")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := SignJWT("admin", "secret", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	subject, err := ParseJWT(token, "secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if subject != "admin" {
		t.Fatalf("subject = %q, want admin", subject)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := SignJWT("admin", "secret", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseJWT(token, "other"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTExpired(t *testing.T) {
	token, err := SignJWT("admin", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseJWT(token, "secret"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTMangledToken(t *testing.T) {
	if _, err := ParseJWT("not.a.token", "secret"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
