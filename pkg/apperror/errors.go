package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicateLogin     = errors.New("login already taken")
	ErrDuplicateEmail     = errors.New("phone number already registered")
	ErrInvalidPhone       = errors.New("phone number must match +375 XX XXX XX XX")
	ErrInvalidCredentials = errors.New("invalid login or password")
)

// MapErrorToStatus maps a service error to the HTTP status it renders as.
func MapErrorToStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicateLogin) ||
		errors.Is(err, ErrDuplicateEmail) ||
		errors.Is(err, ErrInvalidPhone) ||
		errors.Is(err, ErrInvalidCredentials) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
