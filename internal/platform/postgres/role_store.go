package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/meetuphub/meetup-api/internal/domain"
	"github.com/meetuphub/meetup-api/internal/store"
)

// RoleStore implements store.RoleStore on PostgreSQL. Roles are seeded by
// migrations; the auth workflow only reads them.
type RoleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewRoleStore creates a PostgreSQL-backed role store.
func NewRoleStore(db store.DBTX, logger *slog.Logger) *RoleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RoleStore{
		db:     db,
		logger: logger.With(slog.String("component", "role_store")),
	}
}

var _ store.RoleStore = (*RoleStore)(nil)

// GetByID retrieves an active role by id.
func (s *RoleStore) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	query := `SELECT id, name, description, status FROM roles WHERE id = $1 AND status = TRUE`

	var role domain.Role
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&role.ID,
		&role.Name,
		&role.Description,
		&role.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return &role, nil
}
