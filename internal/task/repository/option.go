package repository

import "transaction-coordinator/internal/model"

// SaveStateOptions upserts the state of one task.
type SaveStateOptions struct {
	TransactionID string
	State         model.TaskState
}
