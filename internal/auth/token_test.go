package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestTokens(t *testing.T, secret string) *Tokens {
	t.Helper()
	tok, err := NewTokens(secret, "HS256", 15*time.Minute, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewTokens: %v", err)
	}
	return tok
}

func TestIssueAccessAndVerify(t *testing.T) {
	t.Parallel()

	tok := newTestTokens(t, "test-secret")
	signed, exp, err := tok.IssueAccess("ann@x.com", "user", "Ann")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", exp)
	}

	claims, err := tok.Verify(signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "ann@x.com" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Role != "user" || claims.Name != "Ann" {
		t.Fatalf("claims not preserved: role=%q name=%q", claims.Role, claims.Name)
	}
	if claims.ID == "" {
		t.Fatal("expected a jti claim")
	}
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	tok := newTestTokens(t, "test-secret")
	signed, _, err := tok.IssueAccess("ann@x.com", "user", "Ann")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	tok.now = func() time.Time { return time.Now().Add(16 * time.Minute) }
	if _, err := tok.Verify(signed); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := newTestTokens(t, "right-secret")
	verifier := newTestTokens(t, "wrong-secret")

	signed, _, err := issuer.IssueAccess("ann@x.com", "admin", "Ann")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if _, err := verifier.Verify(signed); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	tok := newTestTokens(t, "test-secret")
	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := tok.Verify(raw); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature for %q, got %v", raw, err)
		}
	}
}

func TestIssueRefreshSessionMatchesToken(t *testing.T) {
	t.Parallel()

	tok := newTestTokens(t, "test-secret")
	signed, session, err := tok.IssueRefresh("ann@x.com")
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}
	if session.OwnerEmail != "ann@x.com" {
		t.Fatalf("unexpected owner: %s", session.OwnerEmail)
	}

	claims, err := tok.Verify(signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.ID != session.TokenID {
		t.Fatalf("jti %q does not match session id %q", claims.ID, session.TokenID)
	}
	if claims.Role != "" || claims.Name != "" {
		t.Fatalf("refresh token should not carry role/name claims: %+v", claims)
	}
}

func TestNewTokensRejectsBadConfig(t *testing.T) {
	t.Parallel()

	if _, err := NewTokens("", "HS256", time.Minute, time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
	if _, err := NewTokens("secret", "HS256", 0, time.Hour); err == nil {
		t.Fatal("expected error for zero access ttl")
	}
	if _, err := NewTokens("secret", "XX999", time.Minute, time.Hour); err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
	if _, err := NewTokens("secret", "RS256", time.Minute, time.Hour); err == nil {
		t.Fatal("expected error for non-HMAC algorithm")
	}
}
