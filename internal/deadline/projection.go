package deadline

import (
	"fmt"
	"slices"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/pkg/datemath"
)

// Overdue returns incomplete tasks due strictly before today, earliest first.
func Overdue(tasks []model.Task, today datemath.Date) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range tasks {
		if !t.Completed && t.DueDate.Before(today) {
			out = append(out, t)
		}
	}
	sortByDue(out)
	return out
}

// Upcoming returns incomplete tasks due within [today, today+window], earliest first.
// A non-positive window falls back to DefaultWindowDays.
func Upcoming(tasks []model.Task, today datemath.Date, window int) []model.Task {
	if window <= 0 {
		window = DefaultWindowDays
	}
	end := today.AddDays(window)

	out := make([]model.Task, 0)
	for _, t := range tasks {
		if t.Completed || t.DueDate.Before(today) || t.DueDate.After(end) {
			continue
		}
		out = append(out, t)
	}
	sortByDue(out)
	return out
}

// OnDate returns every task due on date, completed or not.
func OnDate(tasks []model.Task, date datemath.Date) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range tasks {
		if t.DueDate == date {
			out = append(out, t)
		}
	}
	sortByDue(out)
	return out
}

// Range groups tasks due within [from, to] by day. Days without tasks are omitted.
func Range(tasks []model.Task, from, to datemath.Date) ([]DayGroup, error) {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, fmt.Errorf("%w: %s..%s", ErrInvalidRange, from, to)
	}
	if from.DaysUntil(to) > MaxRangeDays {
		return nil, fmt.Errorf("%w: more than %d days", ErrInvalidRange, MaxRangeDays)
	}

	in := make([]model.Task, 0)
	for _, t := range tasks {
		if !t.DueDate.Before(from) && !t.DueDate.After(to) {
			in = append(in, t)
		}
	}
	return GroupByDate(in), nil
}

// GroupByDate buckets tasks by due date in ascending day order.
func GroupByDate(tasks []model.Task) []DayGroup {
	sorted := slices.Clone(tasks)
	sortByDue(sorted)

	groups := make([]DayGroup, 0)
	for _, t := range sorted {
		n := len(groups)
		if n > 0 && groups[n-1].Date == t.DueDate {
			groups[n-1].Tasks = append(groups[n-1].Tasks, t)
			continue
		}
		groups = append(groups, DayGroup{Date: t.DueDate, Tasks: []model.Task{t}})
	}
	return groups
}

// Summarize counts the calendar quick stats.
func Summarize(tasks []model.Task, today datemath.Date, window int) Summary {
	var s Summary
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	s.DueToday = countIncomplete(OnDate(tasks, today))
	s.Upcoming = len(Upcoming(tasks, today, window))
	s.Overdue = len(Overdue(tasks, today))
	return s
}

func countIncomplete(tasks []model.Task) int {
	n := 0
	for _, t := range tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// sortByDue orders by due date, then id.
func sortByDue(tasks []model.Task) {
	slices.SortStableFunc(tasks, func(a, b model.Task) int {
		if c := a.DueDate.Compare(b.DueDate); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
}
