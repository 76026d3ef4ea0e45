package gcalendar

import (
	"time"

	"transaction-coordinator/pkg/datemath"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"

	ReminderMethodPopup = "popup"
	EventKind           = "calendar#events"
)

// EventInput is one deadline to render as an all-day Google Calendar event.
type EventInput struct {
	ID            string
	TransactionID string
	Title         string
	Description   string
	Address       string
	Category      string
	Priority      string
	DueDate       datemath.Date
	Completed     bool
	Overdue       bool
}

// FeedOptions controls the exported collection.
type FeedOptions struct {
	Summary         string
	TimeZone        string
	UIDDomain       string
	ReminderMinutes int
	GeneratedAt     time.Time
}
