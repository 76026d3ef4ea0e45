package http

import (
	"errors"
	"net/http"

	"transaction-coordinator/internal/notification"
	pkgErrors "transaction-coordinator/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, notification.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "notification not found")
	case errors.Is(err, notification.ErrInvalidInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
