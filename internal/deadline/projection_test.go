package deadline_test

import (
	"errors"
	"testing"
	"time"

	"transaction-coordinator/internal/deadline"
	"transaction-coordinator/internal/model"
	"transaction-coordinator/pkg/datemath"
)

func d(day int) datemath.Date {
	return datemath.NewDate(2024, time.January, day)
}

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var fixture = []model.Task{
	{ID: "b", DueDate: d(4)},
	{ID: "a", DueDate: d(4)},
	{ID: "c", DueDate: d(2), Completed: true},
	{ID: "d", DueDate: d(5)},
	{ID: "e", DueDate: d(12)},
	{ID: "f", DueDate: d(13)},
	{ID: "g", DueDate: d(1)},
	{ID: "h", DueDate: d(8), Completed: true},
}

func TestOverdue(t *testing.T) {
	got := ids(deadline.Overdue(fixture, d(5)))
	if want := []string{"g", "a", "b"}; !equal(got, want) {
		t.Errorf("Overdue = %v, want %v", got, want)
	}
	if got := deadline.Overdue(nil, d(5)); len(got) != 0 {
		t.Errorf("Overdue(nil) = %v", got)
	}
}

func TestUpcoming(t *testing.T) {
	tests := []struct {
		name   string
		window int
		want   []string
	}{
		{"default window includes today and boundary", 7, []string{"d", "e"}},
		{"zero window falls back", 0, []string{"d", "e"}},
		{"one day", 1, []string{"d"}},
		{"wide", 30, []string{"d", "e", "f"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(deadline.Upcoming(fixture, d(5), tt.window))
			if !equal(got, tt.want) {
				t.Errorf("Upcoming = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpcoming_TiesById(t *testing.T) {
	got := ids(deadline.Upcoming(fixture, d(3), 7))
	if want := []string{"a", "b", "d"}; !equal(got, want) {
		t.Errorf("Upcoming = %v, want %v", got, want)
	}
}

func TestOnDate(t *testing.T) {
	got := ids(deadline.OnDate(fixture, d(4)))
	if want := []string{"a", "b"}; !equal(got, want) {
		t.Errorf("OnDate = %v, want %v", got, want)
	}
	// completed tasks still show on their day
	if got := ids(deadline.OnDate(fixture, d(2))); !equal(got, []string{"c"}) {
		t.Errorf("OnDate = %v", got)
	}
}

func TestRange(t *testing.T) {
	groups, err := deadline.Range(fixture, d(4), d(8))
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	if len(groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(groups))
	}
	if groups[0].Date != d(4) || !equal(ids(groups[0].Tasks), []string{"a", "b"}) {
		t.Errorf("group[0] = %+v", groups[0])
	}
	if groups[2].Date != d(8) {
		t.Errorf("group[2] date = %s", groups[2].Date)
	}

	if _, err := deadline.Range(fixture, d(8), d(4)); !errors.Is(err, deadline.ErrInvalidRange) {
		t.Errorf("reversed range err = %v", err)
	}
	if _, err := deadline.Range(fixture, d(1), d(1).AddDays(400)); !errors.Is(err, deadline.ErrInvalidRange) {
		t.Errorf("long range err = %v", err)
	}
}

func TestSummarize(t *testing.T) {
	got := deadline.Summarize(fixture, d(4), 7)
	want := deadline.Summary{DueToday: 2, Upcoming: 3, Overdue: 1, Completed: 2}
	if got != want {
		t.Errorf("Summarize = %+v, want %+v", got, want)
	}
}

func TestOverdue_RecomputedAsTimeAdvances(t *testing.T) {
	tasks := []model.Task{{ID: "x", DueDate: d(4)}}
	if len(deadline.Overdue(tasks, d(4))) != 0 {
		t.Errorf("due today must not be overdue")
	}
	if len(deadline.Overdue(tasks, d(5))) != 1 {
		t.Errorf("expected overdue the day after")
	}
}
