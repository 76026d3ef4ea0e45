package checklist

import (
	"time"

	"transaction-coordinator/internal/model"
)

// GenerateInput is the transaction data the generator needs.
// Seed carries user-owned state to merge back in by task id.
type GenerateInput struct {
	TransactionID   string
	TransactionType model.TransactionType
	ContractDate    string
	AssignedTo      string
	Seed            map[string]model.TaskState
	CreatedAt       time.Time
}

// Filter narrows a task list. Zero fields match everything.
type Filter struct {
	Status   model.TaskStatus
	Category model.TaskCategory
}

// ChecklistStats represents checklist progress
type ChecklistStats struct {
	Total      int     // Total tasks
	Completed  int     // Completed tasks
	Pending    int     // Not yet completed
	Overdue    int     // Incomplete and past due
	InProgress int     // Manually marked in progress
	Progress   float64 // Completion percentage (0-100)
}
