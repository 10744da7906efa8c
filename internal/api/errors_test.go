package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meetuphub/meetup-api/internal/service/auth"
	"github.com/meetuphub/meetup-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"session mismatch", auth.ErrSessionMismatch, http.StatusUnauthorized},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrMeetUpNotFound), http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"duplicate", store.ErrDuplicate, http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"integrity", store.ErrIntegrity, http.StatusInternalServerError},
		{"unknown", errors.New("driver: bad connection"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, store.ErrUserNotFound.Error(), safeErrorMessage(store.ErrUserNotFound))
	assert.Equal(t, "internal server error", safeErrorMessage(errors.New("pq: out of memory")))
}
