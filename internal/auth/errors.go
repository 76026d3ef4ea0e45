package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("email and password are required")
	ErrSessionNotFound    = errors.New("session not found")
	ErrForbidden          = errors.New("role may not perform this action")
)
