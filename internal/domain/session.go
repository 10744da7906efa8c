package domain

import (
	"errors"
	"time"
)

// Session validation errors.
var (
	ErrEmptyToken    = errors.New("session token cannot be empty")
	ErrInvalidExpiry = errors.New("session expiry must be after creation")
	ErrSessionUserID = errors.New("session user id must be positive")
)

// Session records the single live bearer token for a user. The store layer
// enforces at-most-one row per user: a second login overwrites the existing
// row in place rather than inserting a sibling.
type Session struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewSession creates an unsaved session for the given user and token.
func NewSession(userID int64, token string, createdAt, expiresAt time.Time) (*Session, error) {
	s := &Session{
		UserID:    userID,
		Token:     token,
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the session's fields.
func (s *Session) Validate() error {
	if s.UserID <= 0 {
		return ErrSessionUserID
	}
	if s.Token == "" {
		return ErrEmptyToken
	}
	if !s.ExpiresAt.After(s.CreatedAt) {
		return ErrInvalidExpiry
	}
	return nil
}

// Expired reports whether the session's token lifetime has elapsed.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
