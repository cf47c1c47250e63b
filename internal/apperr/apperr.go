// Package apperr holds the error kinds shared by every service layer.
// Handlers match them with errors.Is and translate them to HTTP statuses,
// so no internal error text ever reaches a client.
package apperr

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAlreadyExists   = errors.New("already exists")
	ErrCart            = errors.New("cart error")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrMalformedToken  = errors.New("malformed token")
	ErrInvalidPricing  = errors.New("invalid pricing")
	ErrInternal        = errors.New("internal error")
)

// Status maps an error kind to the HTTP status the transport layer returns.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidArgument),
		errors.Is(err, ErrAlreadyExists),
		errors.Is(err, ErrCart),
		errors.Is(err, ErrInvalidPricing):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated),
		errors.Is(err, ErrMalformedToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
