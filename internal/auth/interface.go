package auth

import (
	"context"

	"transaction-coordinator/internal/model"
)

// UseCase defines the business logic interface for sessions and the user directory.
type UseCase interface {
	// Login accepts any non-empty credentials. Known emails get their directory role,
	// anything else logs in as a client.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Logout(ctx context.Context, sc model.Scope) error
	Me(ctx context.Context, sc model.Scope) (MeOutput, error)

	// Resolve turns a bearer token into a scope. It satisfies middleware.SessionResolver.
	Resolve(ctx context.Context, token string) (model.Scope, error)

	ListUsers(ctx context.Context, sc model.Scope, input ListUsersInput) (ListUsersOutput, error)

	// Directory lists every user for name lookups by other domains. It is not role checked.
	Directory(ctx context.Context) ([]model.User, error)
}
