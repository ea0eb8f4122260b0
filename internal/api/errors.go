package api

import (
	"errors"
	"net/http"

	"vietger/internal/api/shared"
	"vietger/internal/catalog"
	"vietger/internal/domain"
	"vietger/internal/quiz"
	"vietger/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, catalog.ErrDeckNotFound),
		errors.Is(err, catalog.ErrWordNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Session state conflicts
	case errors.Is(err, quiz.ErrNoWords):
		return http.StatusConflict

	case errors.Is(err, quiz.ErrNoActiveSession):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, quiz.ErrWordNotInSession),
		errors.Is(err, domain.ErrInvalidDirection),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, catalog.ErrDeckNotFound):
		return "Deck not found"

	case errors.Is(err, catalog.ErrWordNotFound):
		return "Word not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, quiz.ErrNoWords):
		return "No words available for a session"

	case errors.Is(err, quiz.ErrNoActiveSession):
		return "No active quiz session"

	case errors.Is(err, quiz.ErrWordNotInSession):
		return "Word is not part of the current session"

	case errors.Is(err, domain.ErrInvalidDirection):
		return "Invalid quiz direction"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request"

	default:
		return "An unexpected error occurred"
	}
}

// respondWithMappedError maps err to a status code and safe message and
// writes the response, logging the underlying error.
func respondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}
