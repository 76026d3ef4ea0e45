package http

import (
	"errors"
	"net/http"

	"transaction-coordinator/internal/transaction"
	pkgErrors "transaction-coordinator/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, transaction.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "transaction not found")
	case errors.Is(err, transaction.ErrForbidden):
		return pkgErrors.ErrForbidden
	case errors.Is(err, transaction.ErrInvalidInput),
		errors.Is(err, transaction.ErrInvalidStatusTransition):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
