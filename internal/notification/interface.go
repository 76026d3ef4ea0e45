package notification

import (
	"context"

	"transaction-coordinator/internal/model"
)

// UseCase defines the business logic interface for the notification domain.
// Notifications are derived from the caller's visible tasks on every call.
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	MarkRead(ctx context.Context, sc model.Scope, id string) error
	MarkAllRead(ctx context.Context, sc model.Scope) (int, error)
	Dismiss(ctx context.Context, sc model.Scope, id string) error

	GetSettings(ctx context.Context, sc model.Scope) (SettingsOutput, error)
	UpdateSettings(ctx context.Context, sc model.Scope, input UpdateSettingsInput) (SettingsOutput, error)

	// Digest groups today's alerts by type.
	Digest(ctx context.Context, sc model.Scope) (DigestOutput, error)

	// Test builds a synthetic notification. Nothing is delivered.
	Test(ctx context.Context, sc model.Scope) (TestOutput, error)
}
