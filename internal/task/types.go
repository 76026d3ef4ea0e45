package task

import (
	"google.golang.org/api/calendar/v3"

	"transaction-coordinator/internal/checklist"
	"transaction-coordinator/internal/deadline"
	"transaction-coordinator/internal/model"
	"transaction-coordinator/pkg/datemath"
)

// Item is a task plus the dependencies still holding it back.
type Item struct {
	Task      model.Task
	BlockedBy []string
}

// TransactionTasks is one transaction with its current checklist.
type TransactionTasks struct {
	Transaction model.Transaction
	Tasks       []model.Task
}

// TaskRef addresses a single task by its transaction and template.
type TaskRef struct {
	TransactionID string
	TemplateID    string
}

// --- UseCase Inputs ---

type ListInput struct {
	TransactionID string
	Status        model.TaskStatus
	Category      model.TaskCategory
}

type SetStatusInput struct {
	TaskRef
	Status model.TaskStatus
}

type UpdateNotesInput struct {
	TaskRef
	Notes string
}

// CalendarInput takes an ISO date or a relative phrase such as "tomorrow". Empty means today.
type CalendarInput struct {
	Date       string
	WindowDays int
}

type RangeInput struct {
	From string
	To   string
}

type ExportICSInput struct {
	ReminderMinutes int
}

// --- UseCase Outputs ---

type ListOutput struct {
	Transaction model.Transaction
	Items       []Item
	Stats       checklist.ChecklistStats
}

type TaskOutput struct {
	Task model.Task
}

type CalendarOutput struct {
	Today    datemath.Date
	Date     datemath.Date
	Summary  deadline.Summary
	Overdue  []model.Task
	Upcoming []model.Task
	OnDate   []model.Task
}

type RangeOutput struct {
	From datemath.Date
	To   datemath.Date
	Days []deadline.DayGroup
}

type ExportICSOutput struct {
	FileName    string
	ContentType string
	Content     string
	EventCount  int
}

type ExportGoogleOutput struct {
	Feed    *calendar.Events
	Skipped int
}
