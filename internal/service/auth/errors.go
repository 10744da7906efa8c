package auth

import "errors"

// Common authentication service errors.
var (
	// ErrInvalidToken indicates the token is malformed or its signature
	// does not verify.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials indicates the password does not match the
	// stored hash. An unknown email is a lookup miss (404), not this.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionMismatch indicates the presented token does not match the
	// user's current session, i.e. it was superseded by a later login.
	ErrSessionMismatch = errors.New("token superseded by a newer session")
)
