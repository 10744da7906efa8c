package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	// Entity-specific variants below wrap it so callers can match either.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation or
	// references a row that does not exist (foreign key violation).
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrIntegrity is returned when a write appeared to succeed but the
	// immediate re-read could not find the row.
	ErrIntegrity = errors.New("post-write verification failed")

	// Entity-specific "not found" errors.
	ErrUserNotFound     = fmt.Errorf("%w: user", ErrNotFound)
	ErrRoleNotFound     = fmt.Errorf("%w: role", ErrNotFound)
	ErrSessionNotFound  = fmt.Errorf("%w: session", ErrNotFound)
	ErrCountryNotFound  = fmt.Errorf("%w: country", ErrNotFound)
	ErrCityNotFound     = fmt.Errorf("%w: city", ErrNotFound)
	ErrLocationNotFound = fmt.Errorf("%w: location", ErrNotFound)
	ErrMeetUpNotFound   = fmt.Errorf("%w: meetup", ErrNotFound)
	ErrEventNotFound    = fmt.Errorf("%w: event", ErrNotFound)

	// ErrEmailExists indicates that a user with the given email already
	// exists. Surfaced when the users.email unique constraint trips.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFound reports whether err is any kind of "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicate reports whether err is any kind of "duplicate" error.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
