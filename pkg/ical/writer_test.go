package ical

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestEncode(t *testing.T) {
	out := Encode(Calendar{
		Stamp:           time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC),
		ReminderMinutes: 60,
		Events: []Event{
			{
				UID:         "1-earnest-money@transactiontc.com",
				Date:        time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
				Summary:     "Earnest Money Deposit",
				Description: "Collect deposit - Property: 123 Main St, Philadelphia",
				Category:    "contract",
				Priority:    "high",
			},
			{
				UID:       "1-title-search@transactiontc.com",
				Date:      time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
				Summary:   "Title Search",
				Priority:  "medium",
				Completed: true,
			},
		},
	})

	wants := []string{
		"BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//TransactionTC//Transaction Deadlines//EN\r\n",
		"CALSCALE:GREGORIAN\r\n",
		"METHOD:PUBLISH\r\n",
		"UID:1-earnest-money@transactiontc.com\r\n",
		"DTSTAMP:20240102T150405Z\r\n",
		"DTSTART;VALUE=DATE:20240104\r\n",
		`DESCRIPTION:Collect deposit - Property: 123 Main St\, Philadelphia` + "\r\n",
		"CATEGORIES:contract\r\n",
		"PRIORITY:1\r\n",
		"PRIORITY:5\r\n",
		"STATUS:CONFIRMED\r\n",
		"STATUS:COMPLETED\r\n",
		"TRIGGER:-PT60M\r\n",
		"ACTION:DISPLAY\r\n",
		"DESCRIPTION:Reminder: Title Search\r\n",
	}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q", w)
		}
	}
	if !strings.HasSuffix(out, "END:VCALENDAR\r\n") {
		t.Errorf("output does not end with END:VCALENDAR")
	}
	if got := strings.Count(out, "BEGIN:VALARM"); got != 2 {
		t.Errorf("VALARM count = %d, want 2", got)
	}
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("VEVENT count = %d, want 2", got)
	}
}

func TestEncode_NoReminder(t *testing.T) {
	out := Encode(Calendar{Events: []Event{{UID: "a", Summary: "A"}}})
	if strings.Contains(out, "VALARM") {
		t.Errorf("unexpected alarm")
	}
}

func TestEncode_Escaping(t *testing.T) {
	out := Encode(Calendar{Events: []Event{{
		UID:         "a",
		Summary:     `Review; sign, return\`,
		Description: "line one\r\nline two",
	}}})

	wants := []string{
		`SUMMARY:Review\; sign\, return\\` + "\r\n",
		`DESCRIPTION:line one\nline two` + "\r\n",
	}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q", w)
		}
	}
}

func TestEncode_Folding(t *testing.T) {
	tcs := map[string]struct {
		summary string
		want    string
	}{
		"multi-byte": {
			summary: strings.Repeat("é", 60),
			want:    "SUMMARY:" + strings.Repeat("é", 60) + "\r\n",
		},
		"words": {
			summary: strings.Repeat("Inspection contingency ", 8),
			want:    "SUMMARY:" + strings.Repeat("Inspection contingency ", 8) + "\r\n",
		},
		"continuation bytes": {
			summary: strings.Repeat("\x80", 200),
			want:    "SUMMARY:�\r\n",
		},
		"broken sequences": {
			summary: strings.Repeat("a\xe9", 100),
			want:    "SUMMARY:" + strings.Repeat("a�", 100) + "\r\n",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			out := Encode(Calendar{Events: []Event{{UID: "a", Summary: tc.summary}}})

			for i, l := range strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n") {
				if len(l) > 75 {
					t.Errorf("line %d has %d octets", i, len(l))
				}
				if !utf8.ValidString(l) {
					t.Errorf("line %d is not valid UTF-8: %q", i, l)
				}
			}

			unfolded := strings.ReplaceAll(out, "\r\n ", "")
			if !strings.Contains(unfolded, tc.want) {
				t.Errorf("unfolded output missing %q", tc.want)
			}
		})
	}
}

func TestPriorityValue(t *testing.T) {
	tcs := map[string]int{"high": 1, "medium": 5, "low": 9, "": 9}
	for in, want := range tcs {
		if got := priorityValue(in); got != want {
			t.Errorf("priorityValue(%q) = %d, want %d", in, got, want)
		}
	}
}
