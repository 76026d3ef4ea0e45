package ical

import "time"

const (
	ProdID      = "-//TransactionTC//Transaction Deadlines//EN"
	ContentType = "text/calendar; charset=utf-8"
	FileName    = "transaction-deadlines.ics"
)

// Event is one all-day deadline in the exported calendar.
type Event struct {
	UID         string
	Date        time.Time
	Summary     string
	Description string
	Category    string
	Priority    string
	Completed   bool
}

// Calendar is a VCALENDAR document.
type Calendar struct {
	Stamp           time.Time
	ReminderMinutes int
	Events          []Event
}
