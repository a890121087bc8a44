package helpers

import (
	"strings"
	"testing"
	"time"
)

func TestGravatarURLNormalizesEmail(t *testing.T) {
	a := GravatarURL("Alice@Example.COM")
	b := GravatarURL(" alice@example.com ")
	if a != b {
		t.Errorf("case/whitespace variants hash differently:\n%s\n%s", a, b)
	}
	if !strings.HasPrefix(a, "https://www.gravatar.com/avatar/") {
		t.Errorf("unexpected url: %s", a)
	}
	if !strings.HasSuffix(a, "?s=200&d=mm&r=pg") {
		t.Errorf("missing query params: %s", a)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash equals plaintext")
	}
	if !CompareHashAndPassword(hash, "password123") {
		t.Error("correct password rejected")
	}
	if CompareHashAndPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestJWTGenerateParse(t *testing.T) {
	m := NewJWTManager("secret-a", time.Hour)

	token, exp, err := m.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Errorf("expiry in the past: %v", exp)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("UserID = %q", claims.UserID)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	a := &JWTManager{Secret: []byte("secret-a"), TTL: time.Hour}
	b := &JWTManager{Secret: []byte("secret-b"), TTL: time.Hour}

	token, _, err := a.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := b.Parse(token); err == nil {
		t.Error("token signed with another secret accepted")
	}
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	m := &JWTManager{Secret: []byte("secret-a"), TTL: -time.Minute}
	token, _, err := m.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Error("expired token accepted")
	}
}
