package ical

import (
	"fmt"
	"strings"

	ics "github.com/arran4/golang-ical"
)

// Encode renders c as RFC 5545 text with CRLF line endings.
// TEXT values are escaped and lines folded at 75 octets by the ics serializer.
func Encode(c Calendar) string {
	cal := ics.NewCalendar()
	cal.SetProductId(ProdID)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)

	for _, e := range c.Events {
		ev := cal.AddEvent(e.UID)
		ev.SetDtStampTime(c.Stamp)
		ev.SetAllDayStartAt(e.Date)
		ev.SetSummary(text(e.Summary))
		if e.Description != "" {
			ev.SetDescription(text(e.Description))
		}
		if e.Category != "" {
			ev.AddCategory(text(e.Category))
		}
		ev.SetPriority(priorityValue(e.Priority))
		if e.Completed {
			ev.SetStatus(ics.ObjectStatusCompleted)
		} else {
			ev.SetStatus(ics.ObjectStatusConfirmed)
		}
		if c.ReminderMinutes > 0 {
			alarm := ev.AddAlarm()
			alarm.SetTrigger(fmt.Sprintf("-PT%dM", c.ReminderMinutes))
			alarm.SetAction(ics.ActionDisplay)
			alarm.SetDescription(text("Reminder: " + e.Summary))
		}
	}

	return cal.Serialize(ics.WithNewLineWindows)
}

// priorityValue maps high/medium/low onto the iCalendar 1..9 scale.
func priorityValue(p string) int {
	switch p {
	case "high":
		return 1
	case "medium":
		return 5
	default:
		return 9
	}
}

// text normalizes a value before the serializer escapes it: CRLF collapses to
// LF and invalid UTF-8 is replaced so folding never splits a broken sequence.
func text(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ToValidUTF8(s, "�")
}
