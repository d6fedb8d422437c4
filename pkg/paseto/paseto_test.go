package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T, ttl time.Duration) *Manager {
	t.Helper()
	m, err := New(Config{
		Mode:      ModeLocal,
		Issuer:    "shushrut",
		Audience:  "shushrut-api",
		AccessTTL: ttl,
	}, NewLocalKeys())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestIssueAndVerify(t *testing.T) {
	m := newTestManager(t, time.Minute)

	sid := uuid.New()
	token, err := m.Issue(Identity{
		UserID:    "doc-42",
		SessionID: &sid,
		Name:      "Dr. Rao",
		Email:     "rao@example.com",
		Picture:   "https://cdn.example.com/rao.jpg",
	})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "doc-42" {
		t.Errorf("UserID = %q", claims.UserID)
	}
	if claims.SessionID == nil || *claims.SessionID != sid {
		t.Errorf("SessionID = %v, want %v", claims.SessionID, sid)
	}
	if claims.Name != "Dr. Rao" || claims.Email != "rao@example.com" {
		t.Errorf("profile claims = %q / %q", claims.Name, claims.Email)
	}
	if claims.Subject != "doc-42" {
		t.Errorf("Subject = %q", claims.Subject)
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	issuer := newTestManager(t, time.Minute)
	verifier := newTestManager(t, time.Minute)

	token, err := issuer.Issue(Identity{UserID: "doc-42"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("expected verification to fail with a different key")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := newTestManager(t, time.Minute)

	// Issue an already-expired token with the same keys.
	issuer := &Manager{cfg: m.cfg, keys: m.keys}
	issuer.cfg.AccessTTL = -time.Hour

	token, err := issuer.Issue(Identity{UserID: "doc-42"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := m.Verify(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestVerifyAcceptsTokenIssuedAfterConstruction(t *testing.T) {
	m := newTestManager(t, time.Minute)

	// PASETO timestamps have second resolution, so cross a second boundary
	// between constructing the manager and issuing the token.
	time.Sleep(1500 * time.Millisecond)

	token, err := m.Issue(Identity{UserID: "doc-42"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := m.Verify(token); err != nil {
		t.Fatalf("Verify rejected a fresh token: %v", err)
	}
}

func TestIssueRequiresUserID(t *testing.T) {
	m := newTestManager(t, time.Minute)
	if _, err := m.Issue(Identity{}); err == nil {
		t.Fatal("expected error for empty UserID")
	}
}
