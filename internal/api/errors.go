package api

import (
	"errors"
	"net/http"

	"github.com/meetuphub/meetup-api/internal/api/shared"
	"github.com/meetuphub/meetup-api/internal/service/auth"
	"github.com/meetuphub/meetup-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes so
// handlers never leak internal error types to clients. Validation problems
// are detected before any store call and mapped to 400 by the handlers
// directly; this function covers everything that bubbles up from below.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrSessionMismatch):
		return http.StatusUnauthorized
	case store.IsNotFound(err):
		return http.StatusNotFound
	case store.IsDuplicate(err):
		return http.StatusConflict
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrIntegrity):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// safeErrorMessage returns a client-facing message for err. Expected
// conditions surface their own text; everything else degrades to a
// generic message.
func safeErrorMessage(err error) string {
	status := MapErrorToStatusCode(err)
	switch status {
	case http.StatusNotFound, http.StatusConflict, http.StatusUnauthorized, http.StatusBadRequest:
		return err.Error()
	default:
		return "internal server error"
	}
}

// respondWithMappedError maps err onto a status code and writes the
// corresponding error response.
func respondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithError(w, r, MapErrorToStatusCode(err), safeErrorMessage(err))
}
