package store

import (
	"context"
	"database/sql"

	"github.com/meetuphub/meetup-api/internal/domain"
)

// SessionStore defines persistence for user sessions. The implementation
// must guarantee at most one row per user: Upsert overwrites the token,
// creation time, and expiry in place when a row already exists.
type SessionStore interface {
	// Upsert inserts a session for the user or, if one exists, replaces
	// its token, creation time, and expiry.
	Upsert(ctx context.Context, session *domain.Session) error

	// GetByUserID retrieves the user's session.
	// Returns ErrSessionNotFound if the user has no session.
	GetByUserID(ctx context.Context, userID int64) (*domain.Session, error)

	// Delete removes the user's session row.
	// Returns ErrSessionNotFound if the user has no session.
	Delete(ctx context.Context, userID int64) error

	// WithTx returns a store that runs its statements on tx, for use
	// inside RunInTransaction.
	WithTx(tx *sql.Tx) SessionStore
}
