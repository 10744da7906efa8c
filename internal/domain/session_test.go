package domain

import (
	"testing"
	"time"
)

func TestNewSession(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	expires := created.Add(12 * time.Hour)

	session, err := NewSession(42, "token-value", created, expires)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if session.UserID != 42 {
		t.Errorf("Expected user id 42, got %d", session.UserID)
	}
	if session.Token != "token-value" {
		t.Errorf("Expected token token-value, got %s", session.Token)
	}
	if !session.ExpiresAt.Equal(expires) {
		t.Errorf("Expected expiry %v, got %v", expires, session.ExpiresAt)
	}

	// Invalid inputs
	if _, err := NewSession(0, "token-value", created, expires); err != ErrSessionUserID {
		t.Errorf("Expected error %v, got %v", ErrSessionUserID, err)
	}
	if _, err := NewSession(42, "", created, expires); err != ErrEmptyToken {
		t.Errorf("Expected error %v, got %v", ErrEmptyToken, err)
	}
	if _, err := NewSession(42, "token-value", created, created); err != ErrInvalidExpiry {
		t.Errorf("Expected error %v, got %v", ErrInvalidExpiry, err)
	}
	if _, err := NewSession(42, "token-value", expires, created); err != ErrInvalidExpiry {
		t.Errorf("Expected error %v, got %v", ErrInvalidExpiry, err)
	}
}

func TestSessionExpired(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	expires := created.Add(12 * time.Hour)

	session := Session{UserID: 1, Token: "t", CreatedAt: created, ExpiresAt: expires}

	if session.Expired(created) {
		t.Error("Expected session to be live at creation")
	}
	if session.Expired(expires) {
		t.Error("Expected session to be live exactly at expiry")
	}
	if !session.Expired(expires.Add(time.Second)) {
		t.Error("Expected session to be expired after expiry")
	}
}
