package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetuphub/meetup-api/internal/domain"
	"github.com/meetuphub/meetup-api/internal/mocks"
)

type userHandlerFixture struct {
	handler  *UserHandler
	users    *mocks.MockUserStore
	roles    *mocks.MockRoleStore
	sessions *mocks.MockSessionStore
	tokens   *mocks.MockTokenService
	mailer   *mocks.MockMailer
	router   chi.Router
}

func newUserHandlerFixture(t *testing.T) *userHandlerFixture {
	t.Helper()

	f := &userHandlerFixture{
		users:    mocks.NewMockUserStore(),
		roles:    mocks.NewMockRoleStore(&domain.Role{ID: 1, Name: "member", Status: true}),
		sessions: mocks.NewMockSessionStore(),
		tokens: &mocks.MockTokenService{
			Token:     "issued-token",
			ExpiresAt: time.Now().UTC().Add(12 * time.Hour),
		},
		mailer: &mocks.MockMailer{},
	}
	f.handler = NewUserHandler(
		nil, f.users, f.roles, f.sessions, f.tokens, &mocks.MockPasswordManager{}, f.mailer, nil,
	)

	r := chi.NewRouter()
	r.Post("/api/user/register", f.handler.Register)
	r.Post("/api/user/login", f.handler.Login)
	r.Post("/api/user/logout/{id}", f.handler.Logout)
	r.Put("/api/user/password", f.handler.ChangePassword)
	r.Get("/api/user/{id}", f.handler.GetUser)
	r.Put("/api/user/{id}", f.handler.UpdateUser)
	r.Delete("/api/user/{id}", f.handler.DeleteUser)
	f.router = r
	return f
}

func (f *userHandlerFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *userHandlerFixture) register(t *testing.T, email string) UserResponse {
	t.Helper()

	rec := f.do(t, http.MethodPost, "/api/user/register", RegisterUserRequest{
		Name:     "Ada",
		LastName: "Lovelace",
		Email:    email,
		Password: "s3cret-pass",
		RoleID:   1,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestUserHandlerRegister(t *testing.T) {
	t.Parallel()

	t.Run("creates active user and sends welcome mail", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)

		resp := f.register(t, "ada@example.com")

		assert.NotZero(t, resp.ID)
		assert.Equal(t, "Ada", resp.Name)
		assert.Equal(t, "ada@example.com", resp.Email)
		assert.True(t, resp.Status)

		stored, err := f.users.GetByEmail(context.Background(), "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, "hashed:s3cret-pass", stored.PasswordHash)

		require.Len(t, f.mailer.Sent, 1)
		assert.Equal(t, "ada@example.com", f.mailer.Sent[0].To)
	})

	t.Run("response never carries the password hash", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)

		rec := f.do(t, http.MethodPost, "/api/user/register", RegisterUserRequest{
			Name:     "Ada",
			Email:    "ada@example.com",
			Password: "s3cret-pass",
			RoleID:   1,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "s3cret-pass")
		assert.NotContains(t, rec.Body.String(), "hashed:")
	})

	t.Run("duplicate email answers 409", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)
		f.register(t, "ada@example.com")

		rec := f.do(t, http.MethodPost, "/api/user/register", RegisterUserRequest{
			Name:     "Other",
			Email:    "ada@example.com",
			Password: "another-pass",
			RoleID:   1,
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown role answers 404", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)

		rec := f.do(t, http.MethodPost, "/api/user/register", RegisterUserRequest{
			Name:     "Ada",
			Email:    "ada@example.com",
			Password: "s3cret-pass",
			RoleID:   99,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, f.users.Users)
	})

	t.Run("validation failures answer 400", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)

		tests := []struct {
			name string
			req  RegisterUserRequest
		}{
			{"missing name", RegisterUserRequest{Email: "a@b.co", Password: "s3cret-pass", RoleID: 1}},
			{"bad email", RegisterUserRequest{Name: "Ada", Email: "nope", Password: "s3cret-pass", RoleID: 1}},
			{"short password", RegisterUserRequest{Name: "Ada", Email: "a@b.co", Password: "abc", RoleID: 1}},
			{"missing role", RegisterUserRequest{Name: "Ada", Email: "a@b.co", Password: "s3cret-pass"}},
		}
		for _, tc := range tests {
			rec := f.do(t, http.MethodPost, "/api/user/register", tc.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code, tc.name)
		}
	})

	t.Run("malformed body answers 400", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)

		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("mailer failure does not fail registration", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)
		f.mailer.SendErr = assert.AnError

		rec := f.do(t, http.MethodPost, "/api/user/register", RegisterUserRequest{
			Name:     "Ada",
			Email:    "ada@example.com",
			Password: "s3cret-pass",
			RoleID:   1,
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUserHandlerLogin(t *testing.T) {
	t.Parallel()

	t.Run("returns token and stores session", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)
		user := f.register(t, "ada@example.com")

		rec := f.do(t, http.MethodPost, "/api/user/login", LoginRequest{
			Email:    "ada@example.com",
			Password: "s3cret-pass",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "issued-token", resp.Token)
		assert.WithinDuration(t, time.Now().UTC().Add(12*time.Hour), resp.ExpiresAt, time.Minute)

		session, err := f.sessions.GetByUserID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "issued-token", session.Token)
	})

	t.Run("unknown email answers 404", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)

		rec := f.do(t, http.MethodPost, "/api/user/login", LoginRequest{
			Email:    "ghost@example.com",
			Password: "whatever-pass",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("wrong password answers 401", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)
		f.register(t, "ada@example.com")

		rec := f.do(t, http.MethodPost, "/api/user/login", LoginRequest{
			Email:    "ada@example.com",
			Password: "wrong-pass",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("second login replaces the session row", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)
		user := f.register(t, "ada@example.com")

		tokens := []string{"first-token", "second-token"}
		calls := 0
		f.tokens.GenerateTokenFn = func(ctx context.Context, userID int64, email string) (string, time.Time, error) {
			token := tokens[calls]
			calls++
			return token, time.Now().UTC().Add(12 * time.Hour), nil
		}

		login := LoginRequest{Email: "ada@example.com", Password: "s3cret-pass"}
		require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/user/login", login).Code)
		require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/user/login", login).Code)

		require.Len(t, f.sessions.Sessions, 1)
		session, err := f.sessions.GetByUserID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "second-token", session.Token)
	})
}

func TestUserHandlerLogout(t *testing.T) {
	t.Parallel()

	t.Run("deletes the session", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)
		user := f.register(t, "ada@example.com")
		rec := f.do(t, http.MethodPost, "/api/user/login", LoginRequest{
			Email: "ada@example.com", Password: "s3cret-pass",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = f.do(t, http.MethodPost, "/api/user/logout/1", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		_, err := f.sessions.GetByUserID(context.Background(), user.ID)
		assert.Error(t, err)
	})

	t.Run("unknown user answers 404", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)

		rec := f.do(t, http.MethodPost, "/api/user/logout/99", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("no session answers 404", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)
		f.register(t, "ada@example.com")

		rec := f.do(t, http.MethodPost, "/api/user/logout/1", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id answers 400", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)

		rec := f.do(t, http.MethodPost, "/api/user/logout/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandlerChangePassword(t *testing.T) {
	t.Parallel()

	t.Run("stores the new hash", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)
		f.register(t, "ada@example.com")

		rec := f.do(t, http.MethodPut, "/api/user/password", UpdatePasswordRequest{
			Email:        "ada@example.com",
			Password:     "brand-new-pass",
			LastPassword: "s3cret-pass",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		stored, err := f.users.GetByEmail(context.Background(), "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, "hashed:brand-new-pass", stored.PasswordHash)
	})

	t.Run("wrong last password answers 401 and writes nothing", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)
		f.register(t, "ada@example.com")

		rec := f.do(t, http.MethodPut, "/api/user/password", UpdatePasswordRequest{
			Email:        "ada@example.com",
			Password:     "brand-new-pass",
			LastPassword: "wrong-pass",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		stored, err := f.users.GetByEmail(context.Background(), "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, "hashed:s3cret-pass", stored.PasswordHash)
	})

	t.Run("unknown email answers 404", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)

		rec := f.do(t, http.MethodPut, "/api/user/password", UpdatePasswordRequest{
			Email:        "ghost@example.com",
			Password:     "brand-new-pass",
			LastPassword: "whatever-pass",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUserHandlerCRUD(t *testing.T) {
	t.Parallel()

	t.Run("get returns the user", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)
		f.register(t, "ada@example.com")

		rec := f.do(t, http.MethodGet, "/api/user/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ada@example.com", resp.Email)
	})

	t.Run("get unknown user answers 404", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)

		rec := f.do(t, http.MethodGet, "/api/user/42", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update changes profile fields", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)
		f.register(t, "ada@example.com")

		rec := f.do(t, http.MethodPut, "/api/user/1", UpdateUserRequest{
			Name:     "Augusta",
			LastName: "King",
			Status:   true,
			RoleID:   1,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Augusta", resp.Name)
		assert.Equal(t, "King", resp.LastName)
	})

	t.Run("deactivating update still answers with the user", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)
		f.register(t, "ada@example.com")

		rec := f.do(t, http.MethodPut, "/api/user/1", UpdateUserRequest{
			Name:   "Ada",
			Status: false,
			RoleID: 1,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Status)
	})

	t.Run("deactivating update drops the user's session", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)
		f.register(t, "ada@example.com")

		now := time.Now().UTC()
		session, err := domain.NewSession(1, "issued-token", now, now.Add(12*time.Hour))
		require.NoError(t, err)
		require.NoError(t, f.sessions.Upsert(context.Background(), session))

		rec := f.do(t, http.MethodPut, "/api/user/1", UpdateUserRequest{
			Name:   "Ada",
			Status: false,
			RoleID: 1,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Empty(t, f.sessions.Sessions)
	})

	t.Run("activating update keeps the session", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)
		f.register(t, "ada@example.com")

		now := time.Now().UTC()
		session, err := domain.NewSession(1, "issued-token", now, now.Add(12*time.Hour))
		require.NoError(t, err)
		require.NoError(t, f.sessions.Upsert(context.Background(), session))

		rec := f.do(t, http.MethodPut, "/api/user/1", UpdateUserRequest{
			Name:   "Ada",
			Status: true,
			RoleID: 1,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Len(t, f.sessions.Sessions, 1)
	})

	t.Run("delete soft-deletes", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)
		f.register(t, "ada@example.com")

		rec := f.do(t, http.MethodDelete, "/api/user/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		// Invisible to active-only reads, but the row survives.
		rec = f.do(t, http.MethodGet, "/api/user/1", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Len(t, f.users.Users, 1)
	})

	t.Run("delete drops the user's session", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)
		f.register(t, "ada@example.com")

		now := time.Now().UTC()
		session, err := domain.NewSession(1, "issued-token", now, now.Add(12*time.Hour))
		require.NoError(t, err)
		require.NoError(t, f.sessions.Upsert(context.Background(), session))

		rec := f.do(t, http.MethodDelete, "/api/user/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, f.sessions.Sessions)
	})

	t.Run("delete unknown user answers 404", func(t *testing.T) {
		t.Parallel()
		f := newUserHandlerFixture(t)

		rec := f.do(t, http.MethodDelete, "/api/user/42", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
