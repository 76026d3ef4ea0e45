package http

import (
	"errors"
	"net/http"

	"transaction-coordinator/internal/task"
	pkgErrors "transaction-coordinator/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTransactionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "transaction not found")
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, task.ErrForbidden):
		return pkgErrors.ErrForbidden
	case errors.Is(err, task.ErrInvalidInput), errors.Is(err, task.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
