package gcalendar

import (
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
)

// Color ids from the Google Calendar event palette.
var priorityColors = map[string]string{
	PriorityHigh:   "11",
	PriorityMedium: "5",
	PriorityLow:    "2",
}

// ToEvent converts a deadline into an all-day calendar.Event ready for import.
func ToEvent(in EventInput, opts FeedOptions) (*calendar.Event, error) {
	if in.ID == "" {
		return nil, fmt.Errorf("gcalendar.ToEvent: empty event id")
	}
	if in.DueDate.IsZero() {
		return nil, fmt.Errorf("gcalendar.ToEvent: event %s has no due date", in.ID)
	}

	summary := in.Title
	switch {
	case in.Completed:
		summary = "✓ " + in.Title
	case in.Overdue:
		summary = "! " + in.Title
	}

	address := in.Address
	if address == "" {
		address = "N/A"
	}

	colorID, ok := priorityColors[in.Priority]
	if !ok {
		colorID = priorityColors[PriorityLow]
	}

	ev := &calendar.Event{
		ICalUID:     fmt.Sprintf("%s@%s", in.ID, opts.UIDDomain),
		Summary:     summary,
		Description: fmt.Sprintf("%s - Property: %s", in.Description, address),
		Location:    in.Address,
		Status:      "confirmed",
		ColorId:     colorID,
		// All-day events are exclusive of the end date.
		Start:        &calendar.EventDateTime{Date: in.DueDate.String()},
		End:          &calendar.EventDateTime{Date: in.DueDate.AddDays(1).String()},
		Transparency: "transparent",
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{
				"taskId":        in.ID,
				"transactionId": in.TransactionID,
				"category":      in.Category,
				"priority":      in.Priority,
				"completed":     fmt.Sprintf("%t", in.Completed),
			},
		},
	}

	if opts.ReminderMinutes > 0 && !in.Completed {
		ev.Reminders = &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: ReminderMethodPopup, Minutes: int64(opts.ReminderMinutes)},
			},
			ForceSendFields: []string{"UseDefault"},
		}
	}

	return ev, nil
}

// Feed builds a calendar#events collection from the given deadlines.
// Inputs that cannot be converted are skipped and returned as errors alongside the feed.
func Feed(items []EventInput, opts FeedOptions) (*calendar.Events, []error) {
	generated := opts.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}

	feed := &calendar.Events{
		Kind:     EventKind,
		Summary:  opts.Summary,
		TimeZone: opts.TimeZone,
		Updated:  generated.UTC().Format(time.RFC3339),
		Items:    make([]*calendar.Event, 0, len(items)),
	}

	var errs []error
	for _, in := range items {
		ev, err := ToEvent(in, opts)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		feed.Items = append(feed.Items, ev)
	}
	return feed, errs
}
