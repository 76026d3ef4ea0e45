package checklist

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidCatalog = errors.New("invalid task template catalog")
)
