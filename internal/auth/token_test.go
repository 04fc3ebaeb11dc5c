package auth

import (
	"testing"
	"time"
)

func TestGenerateAndVerify_Success(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", 30)
	userID := "user-123"

	tok, exp, err := tm.GenerateToken(userID)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	// 30-day session contract.
	wantExp := time.Now().Add(30 * 24 * time.Hour)
	if diff := exp.Sub(wantExp); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("expiry %v not within a minute of %v", exp, wantExp)
	}

	gotUserID, err := tm.VerifyToken(tok)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotUserID, userID)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	tm := &TokenManager{secret: []byte("secret"), ttl: -time.Second}

	tok, _, err := tm.GenerateToken("u1")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := tm.VerifyToken(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, err := NewTokenManager("right-secret", 30).GenerateToken("u2")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := NewTokenManager("wrong-secret", 30).VerifyToken(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestVerifyToken_MalformedString(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenManager("k", 30).VerifyToken("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestNewTokenManager_DefaultTTL(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("k", 0)
	if tm.ttl != 30*24*time.Hour {
		t.Fatalf("default TTL: got %v want %v", tm.ttl, 30*24*time.Hour)
	}
}
