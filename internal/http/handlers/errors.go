package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/feedline/backend/internal/http/respond"
	"github.com/feedline/backend/internal/service"
)

// writeServiceError maps domain errors onto HTTP statuses. Anything
// unrecognized is an infrastructure failure and becomes a 500 with a
// generic body.
func writeServiceError(w http.ResponseWriter, err error) {
	var notFound *service.NotFoundError
	switch {
	case errors.Is(err, service.ErrMissingCredentials),
		errors.Is(err, service.ErrWrongCredentials):
		respond.Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrUsernameTaken):
		respond.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrCantDoThis):
		respond.Error(w, http.StatusForbidden, err.Error())
	case errors.As(err, &notFound):
		respond.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSelfFollow),
		errors.Is(err, service.ErrAlreadyFollowing),
		errors.Is(err, service.ErrNotFollowing),
		errors.Is(err, service.ErrTextTooLong),
		errors.Is(err, service.ErrUsernameTooShort):
		respond.Error(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("internal error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
