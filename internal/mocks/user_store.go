package mocks

import (
	"context"
	"database/sql"

	"github.com/meetuphub/meetup-api/internal/domain"
	"github.com/meetuphub/meetup-api/internal/store"
)

// MockUserStore implements store.UserStore for testing. Each method can
// be overridden with a function field; otherwise an in-memory map keyed
// by email backs the default behavior.
type MockUserStore struct {
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByIDFn    func(ctx context.Context, id int64) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	UpdateFn     func(ctx context.Context, user *domain.User) error
	DeleteFn     func(ctx context.Context, id int64) error

	Users  map[string]*domain.User
	NextID int64
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a mock store with an empty user map.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users:  make(map[string]*domain.User),
		NextID: 1,
	}
}

// WithTx implements store.UserStore. The mock has no transactions, so it
// returns itself.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// Create implements store.UserStore.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}

	user.ID = m.NextID
	m.NextID++
	m.Users[user.Email] = user
	return nil
}

// GetByID implements store.UserStore.
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, user := range m.Users {
		if user.ID == id && user.Status {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail implements store.UserStore.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	user, exists := m.Users[email]
	if !exists || !user.Status {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// Update implements store.UserStore.
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	for email, existing := range m.Users {
		if existing.ID == user.ID {
			if email != user.Email {
				if _, exists := m.Users[user.Email]; exists {
					return store.ErrEmailExists
				}
				delete(m.Users, email)
			}
			m.Users[user.Email] = user
			return nil
		}
	}
	return store.ErrUserNotFound
}

// Delete implements store.UserStore as a soft delete.
func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	for _, user := range m.Users {
		if user.ID == id && user.Status {
			user.Status = false
			return nil
		}
	}
	return store.ErrUserNotFound
}

// MockRoleStore implements store.RoleStore for testing.
type MockRoleStore struct {
	GetByIDFn func(ctx context.Context, id int64) (*domain.Role, error)

	Roles map[int64]*domain.Role
}

var _ store.RoleStore = (*MockRoleStore)(nil)

// NewMockRoleStore creates a mock store seeded with the given roles.
func NewMockRoleStore(roles ...*domain.Role) *MockRoleStore {
	m := &MockRoleStore{Roles: make(map[int64]*domain.Role)}
	for _, role := range roles {
		m.Roles[role.ID] = role
	}
	return m
}

// GetByID implements store.RoleStore.
func (m *MockRoleStore) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	role, exists := m.Roles[id]
	if !exists {
		return nil, store.ErrRoleNotFound
	}
	return role, nil
}
