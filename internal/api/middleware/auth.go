package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/meetuphub/meetup-api/internal/api/shared"
	"github.com/meetuphub/meetup-api/internal/service/auth"
	"github.com/meetuphub/meetup-api/internal/store"
)

// AuthMiddleware validates JWT bearer tokens and injects the user id into
// the request context. A token is only accepted while it matches the
// user's current session; logging in again supersedes earlier tokens.
type AuthMiddleware struct {
	tokenService auth.TokenService
	sessions     store.SessionStore
	logger       *slog.Logger
}

// NewAuthMiddleware creates an AuthMiddleware.
func NewAuthMiddleware(tokenService auth.TokenService, sessions store.SessionStore, logger *slog.Logger) *AuthMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthMiddleware{
		tokenService: tokenService,
		sessions:     sessions,
		logger:       logger.With(slog.String("component", "auth_middleware")),
	}
}

// Authenticate wraps a handler, rejecting requests without a valid bearer
// token backed by an active session.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := extractToken(r)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, err.Error())
			return
		}

		claims, err := m.tokenService.ValidateToken(r.Context(), tokenString)
		if err != nil {
			status := http.StatusUnauthorized
			msg := "invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				msg = "token expired"
			}
			shared.RespondWithError(w, r, status, msg)
			return
		}

		session, err := m.sessions.GetByUserID(r.Context(), claims.UserID)
		if err != nil {
			if store.IsNotFound(err) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "no active session")
				return
			}
			m.logger.Error("failed to load session", "error", err, "user_id", claims.UserID)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}

		if session.Token != tokenString {
			shared.RespondWithError(w, r, http.StatusUnauthorized, auth.ErrSessionMismatch.Error())
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken pulls the bearer token from the Authorization header.
func extractToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", auth.ErrMissingToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", auth.ErrInvalidToken
	}
	return parts[1], nil
}

// GetUserID extracts the authenticated user's id from the request context.
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(shared.UserIDContextKey).(int64)
	return id, ok
}
