package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error carrying the HTTP status the delivery layer should answer with.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError returns an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrForbidden           = NewHTTPError(http.StatusForbidden, "forbidden")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// AsHTTPError unwraps err into an *HTTPError when one is in the chain.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
