package dashboard

import "errors"

var (
	ErrForbidden    = errors.New("role may not view this report")
	ErrInvalidInput = errors.New("invalid dashboard input")
)
