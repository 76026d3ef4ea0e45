package deadline

import (
	"errors"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/pkg/datemath"
)

// DefaultWindowDays is the look-ahead of the upcoming view.
const DefaultWindowDays = 7

// MaxRangeDays bounds a Range query.
const MaxRangeDays = 366

var ErrInvalidRange = errors.New("invalid date range")

// DayGroup is every task due on one calendar day.
type DayGroup struct {
	Date  datemath.Date
	Tasks []model.Task
}

// Summary is the quick-stats header of the calendar view.
type Summary struct {
	DueToday  int
	Upcoming  int
	Overdue   int
	Completed int
}
