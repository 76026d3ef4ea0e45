package repository

import (
	"context"

	"transaction-coordinator/internal/model"
)

// Repository holds the user directory and live sessions.
type Repository interface {
	// GetUserByEmail returns the zero User (ID == "") when the email is unknown.
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	ListUsers(ctx context.Context, opt ListUsersOptions) ([]model.User, error)

	SaveSession(ctx context.Context, s model.Session) error
	// GetSession returns the zero Session when the id is unknown or expired.
	GetSession(ctx context.Context, id string) (model.Session, error)
	DeleteSession(ctx context.Context, id string) error
}
