package usecase

import (
	"context"
	"fmt"

	"transaction-coordinator/internal/deadline"
	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/task"
	"transaction-coordinator/pkg/datemath"
)

const maxWindowDays = 90

// parseDate accepts ISO dates and relative phrases; empty input means today.
func (uc *implUseCase) parseDate(input string, today datemath.Date) (datemath.Date, error) {
	if input == "" {
		return today, nil
	}
	d, err := uc.dateMath.Parse(input, today)
	if err != nil {
		return datemath.Date{}, fmt.Errorf("%w: %v", task.ErrInvalidInput, err)
	}
	return d, nil
}

// Calendar builds the quick stats, overdue, upcoming and selected-day views.
func (uc *implUseCase) Calendar(ctx context.Context, sc model.Scope, input task.CalendarInput) (task.CalendarOutput, error) {
	window := input.WindowDays
	if window == 0 {
		window = uc.cfg.UpcomingWindowDays
	}
	if window < 0 || window > maxWindowDays {
		return task.CalendarOutput{}, fmt.Errorf("%w: window must be between 1 and %d days", task.ErrInvalidInput, maxWindowDays)
	}

	today := uc.Today()
	date, err := uc.parseDate(input.Date, today)
	if err != nil {
		return task.CalendarOutput{}, err
	}

	_, tasks, err := uc.allTasks(ctx, sc)
	if err != nil {
		return task.CalendarOutput{}, err
	}

	return task.CalendarOutput{
		Today:    today,
		Date:     date,
		Summary:  deadline.Summarize(tasks, today, window),
		Overdue:  deadline.Overdue(tasks, today),
		Upcoming: deadline.Upcoming(tasks, today, window),
		OnDate:   deadline.OnDate(tasks, date),
	}, nil
}

// Range groups visible tasks by due day between From and To inclusive.
func (uc *implUseCase) Range(ctx context.Context, sc model.Scope, input task.RangeInput) (task.RangeOutput, error) {
	today := uc.Today()
	if input.From == "" || input.To == "" {
		return task.RangeOutput{}, fmt.Errorf("%w: from and to are required", task.ErrInvalidInput)
	}
	from, err := uc.parseDate(input.From, today)
	if err != nil {
		return task.RangeOutput{}, err
	}
	to, err := uc.parseDate(input.To, today)
	if err != nil {
		return task.RangeOutput{}, err
	}

	_, tasks, err := uc.allTasks(ctx, sc)
	if err != nil {
		return task.RangeOutput{}, err
	}

	days, err := deadline.Range(tasks, from, to)
	if err != nil {
		return task.RangeOutput{}, fmt.Errorf("%w: %v", task.ErrInvalidInput, err)
	}
	return task.RangeOutput{From: from, To: to, Days: days}, nil
}
