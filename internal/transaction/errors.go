package transaction

import "errors"

var (
	ErrNotFound                = errors.New("transaction not found")
	ErrForbidden               = errors.New("role may not perform this action")
	ErrInvalidInput            = errors.New("invalid transaction input")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
