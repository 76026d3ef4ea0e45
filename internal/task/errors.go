package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrForbidden           = errors.New("role may not modify tasks")
	ErrInvalidInput        = errors.New("invalid task input")
	ErrInvalidStatus       = errors.New("invalid manual status transition")
)
