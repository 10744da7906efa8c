package store

import (
	"context"
	"database/sql"

	"github.com/meetuphub/meetup-api/internal/domain"
)

// UserStore defines persistence for users and their roles.
type UserStore interface {
	// Create inserts a new user and assigns its generated id.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves an active user by id.
	// Returns ErrUserNotFound if no active user matches.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves an active user by email.
	// Returns ErrUserNotFound if no active user matches.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update persists changes to an existing user, including the
	// password hash. Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// Delete soft-deletes a user by flipping its status to inactive.
	// The row is never physically removed.
	// Returns ErrUserNotFound if no active user matches.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a store that runs its statements on tx, for use
	// inside RunInTransaction.
	WithTx(tx *sql.Tx) UserStore
}

// RoleStore defines read access to roles. Roles are seeded by migrations
// and read-only in the auth workflow.
type RoleStore interface {
	// GetByID retrieves an active role by id.
	// Returns ErrRoleNotFound if no active role matches.
	GetByID(ctx context.Context, id int64) (*domain.Role, error)
}
