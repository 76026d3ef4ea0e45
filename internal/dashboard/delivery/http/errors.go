package http

import (
	"errors"
	"net/http"

	"transaction-coordinator/internal/dashboard"
	pkgErrors "transaction-coordinator/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, dashboard.ErrForbidden):
		return pkgErrors.ErrForbidden
	case errors.Is(err, dashboard.ErrInvalidInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
