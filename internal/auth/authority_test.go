package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestAuthority(t *testing.T, at time.Time) *JWTAuthority {
	t.Helper()
	a, err := NewJWTAuthority("test-secret")
	if err != nil {
		t.Fatalf("NewJWTAuthority: %v", err)
	}
	a.now = func() time.Time { return at }
	return a
}

func TestJWTAuthority_IssueVerifyRoundTrip(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := newTestAuthority(t, issued)

	token, session, err := a.Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if session.Username != "admin" {
		t.Errorf("issued username = %q", session.Username)
	}
	if want := issued.Add(7 * 24 * time.Hour); !session.ExpiresAt.Equal(want) {
		t.Errorf("expiry = %v, want %v", session.ExpiresAt, want)
	}

	verified, err := a.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if verified.Username != "admin" {
		t.Errorf("verified username = %q", verified.Username)
	}
	if !verified.ExpiresAt.Equal(session.ExpiresAt) {
		t.Errorf("verified expiry = %v, want %v", verified.ExpiresAt, session.ExpiresAt)
	}
}

func TestJWTAuthority_ExpiredToken(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := newTestAuthority(t, issued)

	token, _, err := a.Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Still valid one hour before the seven-day mark.
	a.now = func() time.Time { return issued.Add(7*24*time.Hour - time.Hour) }
	if _, err := a.Verify(token); err != nil {
		t.Fatalf("token rejected before expiry: %v", err)
	}

	// Rejected one hour after.
	a.now = func() time.Time { return issued.Add(7*24*time.Hour + time.Hour) }
	if _, err := a.Verify(token); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestJWTAuthority_TamperedToken(t *testing.T) {
	a := newTestAuthority(t, time.Now())

	token, _, err := a.Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Flip a character in the signature segment.
	i := strings.LastIndex(token, ".") + 1
	flipped := byte('A')
	if token[i] == 'A' {
		flipped = 'B'
	}
	tampered := token[:i] + string(flipped) + token[i+1:]

	if _, err := a.Verify(tampered); err == nil {
		t.Fatal("tampered token accepted")
	}
}

func TestJWTAuthority_WrongSecret(t *testing.T) {
	a := newTestAuthority(t, time.Now())
	token, _, err := a.Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	other, err := NewJWTAuthority("different-secret")
	if err != nil {
		t.Fatalf("NewJWTAuthority: %v", err)
	}
	if _, err := other.Verify(token); err == nil {
		t.Fatal("token signed with another secret accepted")
	}
}

func TestJWTAuthority_Garbage(t *testing.T) {
	a := newTestAuthority(t, time.Now())
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := a.Verify(token); err == nil {
			t.Errorf("garbage token %q accepted", token)
		}
	}
}

func TestNewJWTAuthority_EmptySecret(t *testing.T) {
	if _, err := NewJWTAuthority(""); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestJWTAuthority_RevokeAll(t *testing.T) {
	a := newTestAuthority(t, time.Now())
	if err := a.RevokeAll(); !errors.Is(err, ErrRevocationUnsupported) {
		t.Fatalf("expected ErrRevocationUnsupported, got %v", err)
	}
}
