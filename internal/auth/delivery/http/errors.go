package http

import (
	"errors"
	"net/http"

	"transaction-coordinator/internal/auth"
	pkgErrors "transaction-coordinator/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrSessionNotFound):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, auth.ErrForbidden):
		return pkgErrors.ErrForbidden
	default:
		return err
	}
}
