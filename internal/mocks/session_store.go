package mocks

import (
	"context"
	"database/sql"

	"github.com/meetuphub/meetup-api/internal/domain"
	"github.com/meetuphub/meetup-api/internal/store"
)

// MockSessionStore implements store.SessionStore for testing. The default
// behavior keeps at most one session per user, matching the real store.
type MockSessionStore struct {
	UpsertFn      func(ctx context.Context, session *domain.Session) error
	GetByUserIDFn func(ctx context.Context, userID int64) (*domain.Session, error)
	DeleteFn      func(ctx context.Context, userID int64) error

	Sessions map[int64]*domain.Session
	NextID   int64
}

var _ store.SessionStore = (*MockSessionStore)(nil)

// NewMockSessionStore creates a mock store with no sessions.
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{
		Sessions: make(map[int64]*domain.Session),
		NextID:   1,
	}
}

// WithTx implements store.SessionStore. The mock has no transactions, so
// it returns itself.
func (m *MockSessionStore) WithTx(tx *sql.Tx) store.SessionStore {
	return m
}

// Upsert implements store.SessionStore.
func (m *MockSessionStore) Upsert(ctx context.Context, session *domain.Session) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, session)
	}

	if existing, ok := m.Sessions[session.UserID]; ok {
		session.ID = existing.ID
	} else {
		session.ID = m.NextID
		m.NextID++
	}
	m.Sessions[session.UserID] = session
	return nil
}

// GetByUserID implements store.SessionStore.
func (m *MockSessionStore) GetByUserID(ctx context.Context, userID int64) (*domain.Session, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}

	session, exists := m.Sessions[userID]
	if !exists {
		return nil, store.ErrSessionNotFound
	}
	return session, nil
}

// Delete implements store.SessionStore.
func (m *MockSessionStore) Delete(ctx context.Context, userID int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID)
	}

	if _, exists := m.Sessions[userID]; !exists {
		return store.ErrSessionNotFound
	}
	delete(m.Sessions, userID)
	return nil
}
