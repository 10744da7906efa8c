package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetuphub/meetup-api/internal/domain"
	"github.com/meetuphub/meetup-api/internal/mocks"
	"github.com/meetuphub/meetup-api/internal/service/auth"
)

func protectedHandler(t *testing.T, wantUserID int64) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantUserID, userID)
		w.WriteHeader(http.StatusOK)
	})
}

func seedSession(t *testing.T, sessions *mocks.MockSessionStore, userID int64, token string) {
	t.Helper()
	now := time.Now().UTC()
	session, err := domain.NewSession(userID, token, now, now.Add(12*time.Hour))
	require.NoError(t, err)
	require.NoError(t, sessions.Upsert(context.Background(), session))
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	claimsFor := func(userID int64) *auth.Claims {
		return &auth.Claims{UserID: userID, Email: "ada@example.com"}
	}

	t.Run("valid token with matching session passes", func(t *testing.T) {
		t.Parallel()
		sessions := mocks.NewMockSessionStore()
		seedSession(t, sessions, 42, "current-token")
		tokens := &mocks.MockTokenService{Claims: claimsFor(42)}

		mw := NewAuthMiddleware(tokens, sessions, nil)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer current-token")
		rec := httptest.NewRecorder()

		mw.Authenticate(protectedHandler(t, 42)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header answers 401", func(t *testing.T) {
		t.Parallel()
		mw := NewAuthMiddleware(&mocks.MockTokenService{}, mocks.NewMockSessionStore(), nil)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()

		mw.Authenticate(protectedHandler(t, 0)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header answers 401", func(t *testing.T) {
		t.Parallel()
		mw := NewAuthMiddleware(&mocks.MockTokenService{}, mocks.NewMockSessionStore(), nil)

		for _, header := range []string{"current-token", "Basic abc", "Bearer "} {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", header)
			rec := httptest.NewRecorder()

			mw.Authenticate(protectedHandler(t, 0)).ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
		}
	})

	t.Run("invalid token answers 401", func(t *testing.T) {
		t.Parallel()
		tokens := &mocks.MockTokenService{ValidateErr: auth.ErrInvalidToken}
		mw := NewAuthMiddleware(tokens, mocks.NewMockSessionStore(), nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()

		mw.Authenticate(protectedHandler(t, 0)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token answers 401", func(t *testing.T) {
		t.Parallel()
		tokens := &mocks.MockTokenService{ValidateErr: auth.ErrExpiredToken}
		mw := NewAuthMiddleware(tokens, mocks.NewMockSessionStore(), nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer stale")
		rec := httptest.NewRecorder()

		mw.Authenticate(protectedHandler(t, 0)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "expired")
	})

	t.Run("no session answers 401", func(t *testing.T) {
		t.Parallel()
		tokens := &mocks.MockTokenService{Claims: claimsFor(42)}
		mw := NewAuthMiddleware(tokens, mocks.NewMockSessionStore(), nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer current-token")
		rec := httptest.NewRecorder()

		mw.Authenticate(protectedHandler(t, 0)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("superseded token answers 401", func(t *testing.T) {
		t.Parallel()
		sessions := mocks.NewMockSessionStore()
		seedSession(t, sessions, 42, "newer-token")
		tokens := &mocks.MockTokenService{Claims: claimsFor(42)}
		mw := NewAuthMiddleware(tokens, sessions, nil)

		// The old token still verifies cryptographically, but the session
		// row now holds the newer one.
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer older-token")
		rec := httptest.NewRecorder()

		mw.Authenticate(protectedHandler(t, 0)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetUserID(t *testing.T) {
	t.Parallel()

	_, ok := GetUserID(context.Background())
	assert.False(t, ok)
}
