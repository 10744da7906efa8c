package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/meetuphub/meetup-api/internal/domain"
	"github.com/meetuphub/meetup-api/internal/platform/logger"
	"github.com/meetuphub/meetup-api/internal/store"
)

// SessionStore implements store.SessionStore on PostgreSQL. A unique index
// on sessions.user_id backs the at-most-one-session-per-user policy, so the
// upsert is race-safe instead of relying on a read-then-write.
type SessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewSessionStore creates a PostgreSQL-backed session store.
func NewSessionStore(db store.DBTX, logger *slog.Logger) *SessionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionStore{
		db:     db,
		logger: logger.With(slog.String("component", "session_store")),
	}
}

var _ store.SessionStore = (*SessionStore)(nil)

// WithTx returns a copy of the store bound to tx.
func (s *SessionStore) WithTx(tx *sql.Tx) store.SessionStore {
	return &SessionStore{db: tx, logger: s.logger}
}

// Upsert inserts the user's session or overwrites the existing row's
// token, creation time, and expiry in place.
func (s *SessionStore) Upsert(ctx context.Context, session *domain.Session) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := session.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO sessions (user_id, token, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET token = EXCLUDED.token,
		    created_at = EXCLUDED.created_at,
		    expires_at = EXCLUDED.expires_at
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		session.UserID,
		session.Token,
		session.CreatedAt,
		session.ExpiresAt,
	).Scan(&session.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: user %d not found", store.ErrInvalidEntity, session.UserID)
		}
		log.Error("failed to upsert session",
			slog.String("error", err.Error()),
			slog.Int64("user_id", session.UserID))
		return err
	}

	log.Debug("session upserted", slog.Int64("user_id", session.UserID))
	return nil
}

// GetByUserID retrieves the user's session row.
func (s *SessionStore) GetByUserID(ctx context.Context, userID int64) (*domain.Session, error) {
	query := `SELECT id, user_id, token, created_at, expires_at FROM sessions WHERE user_id = $1`

	var session domain.Session
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&session.ID,
		&session.UserID,
		&session.Token,
		&session.CreatedAt,
		&session.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// Delete removes the user's session row.
func (s *SessionStore) Delete(ctx context.Context, userID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID)
	if err != nil {
		log.Error("failed to delete session",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrSessionNotFound
	}

	log.Info("session deleted", slog.Int64("user_id", userID))
	return nil
}
