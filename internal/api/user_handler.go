package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/meetuphub/meetup-api/internal/api/shared"
	"github.com/meetuphub/meetup-api/internal/domain"
	"github.com/meetuphub/meetup-api/internal/platform/mail"
	"github.com/meetuphub/meetup-api/internal/service/auth"
	"github.com/meetuphub/meetup-api/internal/store"
)

// UserHandler implements the authentication and user management workflow:
// registration, login with session rotation, logout, password change, and
// profile CRUD.
type UserHandler struct {
	db           *sql.DB
	userStore    store.UserStore
	roleStore    store.RoleStore
	sessionStore store.SessionStore
	tokenService auth.TokenService
	passwords    auth.PasswordManager
	mailer       mail.Mailer
	validator    *validator.Validate
	logger       *slog.Logger
}

// NewUserHandler creates a UserHandler with all dependencies injected.
// db may be nil, in which case multi-store writes run without a
// transaction.
func NewUserHandler(
	db *sql.DB,
	userStore store.UserStore,
	roleStore store.RoleStore,
	sessionStore store.SessionStore,
	tokenService auth.TokenService,
	passwords auth.PasswordManager,
	mailer mail.Mailer,
	logger *slog.Logger,
) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		db:           db,
		userStore:    userStore,
		roleStore:    roleStore,
		sessionStore: sessionStore,
		tokenService: tokenService,
		passwords:    passwords,
		mailer:       mailer,
		validator:    validator.New(),
		logger:       logger.With(slog.String("component", "user_handler")),
	}
}

// Register handles POST /api/user/register.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	// The role must exist before anything is written.
	if _, err := h.roleStore.GetByID(r.Context(), req.RoleID); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	user, err := domain.NewUser(req.Name, req.LastName, req.Email, req.RoleID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid user data: "+err.Error())
		return
	}

	hash, err := h.passwords.Hash(req.Password)
	if err != nil {
		h.logger.Error("failed to hash password", "error", err, "email", req.Email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "failed to register user")
		return
	}
	user.PasswordHash = hash

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "email already registered")
			return
		}
		h.logger.Error("failed to create user", "error", err, "email", req.Email)
		respondWithMappedError(w, r, err)
		return
	}

	// Re-read to confirm the row landed; a miss here is a write failure,
	// not a duplicate (duplicates are caught at insert).
	created, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		h.logger.Error("user not readable after insert", "error", err, "email", req.Email)
		respondWithMappedError(w, r, fmt.Errorf("%w: user not readable after insert", store.ErrIntegrity))
		return
	}

	// Best-effort welcome mail; failure is logged, never surfaced.
	if err := h.mailer.Send(r.Context(), created.Email, "Welcome to MeetupHub",
		fmt.Sprintf("<p>Hi %s, your account is ready.</p>", created.Name)); err != nil {
		h.logger.Warn("failed to send welcome email", "error", err, "email", created.Email)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(created))
}

// Login handles POST /api/user/login. A successful login issues a fresh
// token and overwrites any existing session row for the user, so the
// previous token stops validating at the middleware.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	if err := h.passwords.Compare(user.PasswordHash, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
		return
	}

	token, expiresAt, err := h.tokenService.GenerateToken(r.Context(), user.ID, user.Email)
	if err != nil {
		h.logger.Error("failed to generate token", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "failed to authenticate user")
		return
	}

	session, err := domain.NewSession(user.ID, token, time.Now().UTC(), expiresAt)
	if err != nil {
		h.logger.Error("failed to build session", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "failed to authenticate user")
		return
	}

	if err := h.sessionStore.Upsert(r.Context(), session); err != nil {
		h.logger.Error("failed to upsert session", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "failed to authenticate user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token, ExpiresAt: expiresAt})
}

// Logout handles POST /api/user/logout/{id}. Both a missing user and a
// missing session answer 404, distinguishing "nothing to log out" from a
// bad request.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.userStore.GetByID(r.Context(), id); err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	if _, err := h.sessionStore.GetByUserID(r.Context(), id); err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	if err := h.sessionStore.Delete(r.Context(), id); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "session closed"})
}

// ChangePassword handles PUT /api/user/password. The current password must
// verify before the new hash is stored; on mismatch nothing is written.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req UpdatePasswordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	if err := h.passwords.Compare(user.PasswordHash, req.LastPassword); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "last password does not match")
		return
	}

	hash, err := h.passwords.Hash(req.Password)
	if err != nil {
		h.logger.Error("failed to hash password", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "failed to change password")
		return
	}
	user.PasswordHash = hash

	if err := h.userStore.Update(r.Context(), user); err != nil {
		h.logger.Error("failed to update password", "error", err, "user_id", user.ID)
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "password updated"})
}

// GetUser handles GET /api/user/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user))
}

// UpdateUser handles PUT /api/user/{id}.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	if _, err := h.roleStore.GetByID(r.Context(), req.RoleID); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	user.Name = req.Name
	user.LastName = req.LastName
	user.Status = req.Status
	user.RoleID = req.RoleID

	if err := h.applyUserUpdate(r.Context(), user); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	updated, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		// A deactivating update makes the user invisible to active-only
		// reads; answer from the in-memory copy in that case.
		if errors.Is(err, store.ErrUserNotFound) && !req.Status {
			shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user))
			return
		}
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(updated))
}

// DeleteUser handles DELETE /api/user/{id} as a soft delete. The user's
// session row is removed in the same transaction, so an outstanding token
// stops validating immediately.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.deactivateUser(r.Context(), id); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "user deleted"})
}

// applyUserUpdate persists the user and, when the update deactivates the
// account, drops the session row so an outstanding token stops validating
// at the middleware.
func (h *UserHandler) applyUserUpdate(ctx context.Context, user *domain.User) error {
	apply := func(ctx context.Context, users store.UserStore, sessions store.SessionStore) error {
		if err := users.Update(ctx, user); err != nil {
			return err
		}
		if user.Status {
			return nil
		}
		if err := sessions.Delete(ctx, user.ID); err != nil && !store.IsNotFound(err) {
			return err
		}
		return nil
	}

	if h.db == nil {
		return apply(ctx, h.userStore, h.sessionStore)
	}
	return store.RunInTransaction(ctx, h.db, func(ctx context.Context, tx *sql.Tx) error {
		return apply(ctx, h.userStore.WithTx(tx), h.sessionStore.WithTx(tx))
	})
}

// deactivateUser flips the user inactive and drops their session. A user
// without a session is fine; any other session error aborts the whole
// operation.
func (h *UserHandler) deactivateUser(ctx context.Context, id int64) error {
	remove := func(ctx context.Context, users store.UserStore, sessions store.SessionStore) error {
		if err := users.Delete(ctx, id); err != nil {
			return err
		}
		if err := sessions.Delete(ctx, id); err != nil && !store.IsNotFound(err) {
			return err
		}
		return nil
	}

	if h.db == nil {
		return remove(ctx, h.userStore, h.sessionStore)
	}
	return store.RunInTransaction(ctx, h.db, func(ctx context.Context, tx *sql.Tx) error {
		return remove(ctx, h.userStore.WithTx(tx), h.sessionStore.WithTx(tx))
	})
}

// idParam extracts and validates the {id} URL parameter.
func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id must be a positive integer")
	}
	return id, nil
}
