package repository

import "transaction-coordinator/internal/model"

// ListUsersOptions filters the directory. An empty Role lists everyone.
type ListUsersOptions struct {
	Role model.RoleKind
}
