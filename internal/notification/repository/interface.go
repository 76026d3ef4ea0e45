package repository

import (
	"context"

	"transaction-coordinator/internal/model"
)

// Repository keeps per-user notification preferences and read/dismissed flags.
type Repository interface {
	// GetSettings returns the default settings when the user never saved any.
	GetSettings(ctx context.Context, userID string) (model.NotificationSettings, error)
	SaveSettings(ctx context.Context, userID string, settings model.NotificationSettings) (model.NotificationSettings, error)

	GetState(ctx context.Context, userID string) (model.NotificationState, error)
	SaveState(ctx context.Context, userID string, state model.NotificationState) error
}
