package task

import (
	"context"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/pkg/datemath"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// List returns one transaction's checklist with progress.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Toggle flips completion of one task.
	Toggle(ctx context.Context, sc model.Scope, ref TaskRef) (TaskOutput, error)

	// SetStatus moves a task between pending and in_progress by hand.
	SetStatus(ctx context.Context, sc model.Scope, input SetStatusInput) (TaskOutput, error)

	UpdateNotes(ctx context.Context, sc model.Scope, input UpdateNotesInput) (TaskOutput, error)

	// Calendar returns the overdue, upcoming and single-day views across visible transactions.
	Calendar(ctx context.Context, sc model.Scope, input CalendarInput) (CalendarOutput, error)

	// Range groups visible tasks by day between two dates.
	Range(ctx context.Context, sc model.Scope, input RangeInput) (RangeOutput, error)

	ExportICS(ctx context.Context, sc model.Scope, input ExportICSInput) (ExportICSOutput, error)
	ExportGoogle(ctx context.Context, sc model.Scope) (ExportGoogleOutput, error)

	// Visible returns every visible transaction with freshly derived tasks.
	Visible(ctx context.Context, sc model.Scope) ([]TransactionTasks, error)

	// Today is the current calendar date in the configured timezone.
	Today() datemath.Date
}
