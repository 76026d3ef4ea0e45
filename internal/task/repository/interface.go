package repository

import (
	"context"

	"transaction-coordinator/internal/model"
)

// StateRepository stores the user-owned part of each task, keyed by task id.
type StateRepository interface {
	// ListStates returns the stored states of one transaction keyed by task id.
	ListStates(ctx context.Context, transactionID string) (map[string]model.TaskState, error)

	SaveState(ctx context.Context, opt SaveStateOptions) (model.TaskState, error)

	// DeleteTransactionStates drops every state of one transaction.
	DeleteTransactionStates(ctx context.Context, transactionID string) error
}
