package model

import (
	"time"

	"transaction-coordinator/pkg/datemath"
)

type TaskCategory string

const (
	TaskCategoryContract   TaskCategory = "contract"
	TaskCategoryInspection TaskCategory = "inspection"
	TaskCategoryFinancing  TaskCategory = "financing"
	TaskCategoryAppraisal  TaskCategory = "appraisal"
	TaskCategoryInsurance  TaskCategory = "insurance"
	TaskCategoryTitle      TaskCategory = "title"
	TaskCategoryClosing    TaskCategory = "closing"
	TaskCategoryOther      TaskCategory = "other"
)

func (c TaskCategory) Valid() bool {
	switch c {
	case TaskCategoryContract, TaskCategoryInspection, TaskCategoryFinancing, TaskCategoryAppraisal,
		TaskCategoryInsurance, TaskCategoryTitle, TaskCategoryClosing, TaskCategoryOther:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusOverdue    TaskStatus = "overdue"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusOverdue:
		return true
	}
	return false
}

// TaskTemplate is an immutable catalog entry describing a recurring deadline.
type TaskTemplate struct {
	ID               string
	Title            string
	Description      string
	Category         TaskCategory
	Priority         Priority
	DaysFromContract int
	IsRequired       bool
	Dependencies     []string
	TransactionTypes []TransactionType
}

// AppliesTo reports whether the template is generated for transactions of type t.
func (tpl TaskTemplate) AppliesTo(t TransactionType) bool {
	for _, tt := range tpl.TransactionTypes {
		if tt == t {
			return true
		}
	}
	return false
}

// Task is one template instantiated for one transaction.
// Dependencies hold template ids.
type Task struct {
	ID            string
	TransactionID string
	TemplateID    string
	Title         string
	Description   string
	DueDate       datemath.Date
	Completed     bool
	InProgress    bool
	Status        TaskStatus
	AssignedTo    string
	Category      TaskCategory
	Priority      Priority
	IsRequired    bool
	Dependencies  []string
	CompletedAt   *time.Time
	CompletedBy   string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// StatusOn derives the status as of today.
// Overdue wins over a manual in-progress mark for an incomplete past-due task.
func (t Task) StatusOn(today datemath.Date) TaskStatus {
	switch {
	case t.Completed:
		return TaskStatusCompleted
	case t.DueDate.Before(today):
		return TaskStatusOverdue
	case t.InProgress:
		return TaskStatusInProgress
	default:
		return TaskStatusPending
	}
}

// TaskState is the mutable, user-owned part of a task, keyed by task id.
type TaskState struct {
	TaskID      string
	Completed   bool
	InProgress  bool
	CompletedAt *time.Time
	CompletedBy string
	Notes       string
	UpdatedAt   time.Time
}
