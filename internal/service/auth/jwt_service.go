package auth

import (
	"context"
	"time"
)

// TokenService defines operations for issuing and validating the signed
// bearer tokens that back API authentication.
type TokenService interface {
	// GenerateToken creates a signed token carrying the user's id and
	// email. Returns the compact token string and its expiry instant.
	GenerateToken(ctx context.Context, userID int64, email string) (string, time.Time, error)

	// ValidateToken verifies the token string and extracts its claims.
	// Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the decoded content of a bearer token.
type Claims struct {
	// UserID is the identity the token was issued for.
	UserID int64 `json:"uid"`

	// Email mirrors the user's login handle at issuance time.
	Email string `json:"email"`

	// Standard registered claims.
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`

	// ID is the unique token identifier (jti), distinguishing tokens
	// issued to the same user across logins.
	ID string `json:"jti,omitempty"`
}
