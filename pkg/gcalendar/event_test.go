package gcalendar_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"transaction-coordinator/pkg/datemath"
	"transaction-coordinator/pkg/gcalendar"
)

func TestToEvent(t *testing.T) {
	opts := gcalendar.FeedOptions{UIDDomain: "transactiontc.com", ReminderMinutes: 60}
	due := datemath.NewDate(2024, time.January, 4)

	t.Run("pending deadline", func(t *testing.T) {
		ev, err := gcalendar.ToEvent(gcalendar.EventInput{
			ID:          "1-earnest-money",
			Title:       "Earnest Money Deposit",
			Description: "Collect and deposit earnest money",
			Address:     "123 Main St",
			Priority:    gcalendar.PriorityHigh,
			DueDate:     due,
		}, opts)
		if err != nil {
			t.Fatalf("ToEvent: %v", err)
		}
		if ev.ICalUID != "1-earnest-money@transactiontc.com" {
			t.Errorf("ICalUID = %q", ev.ICalUID)
		}
		if ev.Start.Date != "2024-01-04" || ev.End.Date != "2024-01-05" {
			t.Errorf("start/end = %s/%s", ev.Start.Date, ev.End.Date)
		}
		if ev.Description != "Collect and deposit earnest money - Property: 123 Main St" {
			t.Errorf("Description = %q", ev.Description)
		}
		if ev.ColorId != "11" {
			t.Errorf("ColorId = %q", ev.ColorId)
		}
		if ev.Reminders == nil || len(ev.Reminders.Overrides) != 1 || ev.Reminders.Overrides[0].Minutes != 60 {
			t.Fatalf("Reminders = %+v", ev.Reminders)
		}

		b, err := json.Marshal(ev)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !strings.Contains(string(b), `"useDefault":false`) {
			t.Errorf("useDefault not sent: %s", b)
		}
	})

	t.Run("completed has no reminder", func(t *testing.T) {
		ev, err := gcalendar.ToEvent(gcalendar.EventInput{ID: "x", Title: "T", DueDate: due, Completed: true}, opts)
		if err != nil {
			t.Fatalf("ToEvent: %v", err)
		}
		if ev.Reminders != nil {
			t.Errorf("expected no reminders")
		}
		if ev.Summary != "✓ T" {
			t.Errorf("Summary = %q", ev.Summary)
		}
		if !strings.HasSuffix(ev.Description, "Property: N/A") {
			t.Errorf("Description = %q", ev.Description)
		}
	})

	t.Run("overdue prefix", func(t *testing.T) {
		ev, _ := gcalendar.ToEvent(gcalendar.EventInput{ID: "x", Title: "T", DueDate: due, Overdue: true}, opts)
		if ev.Summary != "! T" {
			t.Errorf("Summary = %q", ev.Summary)
		}
	})

	t.Run("missing date", func(t *testing.T) {
		if _, err := gcalendar.ToEvent(gcalendar.EventInput{ID: "x"}, opts); err == nil {
			t.Errorf("expected error")
		}
	})
}

func TestFeed(t *testing.T) {
	due := datemath.NewDate(2024, time.January, 4)
	feed, errs := gcalendar.Feed([]gcalendar.EventInput{
		{ID: "a", Title: "A", DueDate: due},
		{ID: "b", Title: "B"},
	}, gcalendar.FeedOptions{Summary: "Deadlines", TimeZone: "UTC", UIDDomain: "example.com",
		GeneratedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})

	if len(feed.Items) != 1 || len(errs) != 1 {
		t.Fatalf("items=%d errs=%d", len(feed.Items), len(errs))
	}
	if feed.Kind != gcalendar.EventKind || feed.Updated != "2024-01-01T00:00:00Z" {
		t.Errorf("feed = %+v", feed)
	}
}
