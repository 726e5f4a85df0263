package handlers

import (
	"errors"
	"net/http"

	domainErrors "github.com/tnyamakura/loyaltylink/internal/domain/errors"
)

// statusFor maps domain errors onto HTTP status codes. Anything unmapped is
// a gateway failure: the backing services answered badly or not at all.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrNoSession):
		return http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
