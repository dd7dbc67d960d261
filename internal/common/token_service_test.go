package common

import (
	"testing"
	"time"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))

	tokenString, err := svc.IssueToken("member-1", "inst-1", "sess-1", time.Hour)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	decoded, err := svc.ValidateToken(tokenString)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if decoded.MemberID != "member-1" {
		t.Errorf("Expected member-1, got %s", decoded.MemberID)
	}
	if decoded.InstitutionID != "inst-1" {
		t.Errorf("Expected inst-1, got %s", decoded.InstitutionID)
	}
	if decoded.SessionID != "sess-1" {
		t.Errorf("Expected sess-1, got %s", decoded.SessionID)
	}
	if time.Until(decoded.ExpiresAt) <= 0 {
		t.Errorf("Expected expiry in the future, got %v", decoded.ExpiresAt)
	}
}

func TestTokenService_RejectsWrongKey(t *testing.T) {
	issuer := NewTokenService([]byte("key-a"))
	verifier := NewTokenService([]byte("key-b"))

	tokenString, err := issuer.IssueToken("member-1", "inst-1", "sess-1", time.Hour)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	if _, err := verifier.ValidateToken(tokenString); err == nil {
		t.Error("Expected validation to fail with a different key")
	}
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))

	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Error("Expected validation to fail for malformed input")
	}
}
