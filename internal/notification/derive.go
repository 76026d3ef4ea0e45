package notification

import (
	"fmt"
	"time"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/pkg/datemath"
)

const (
	prefixOverdue  = "overdue-"
	prefixDueToday = "today-"
	prefixReminder = "reminder-"

	messageDateLayout = "Jan 02, 2006"
)

// Derive turns tasks into alerts as of today. Each incomplete task yields at most one
// notification: overdue when past due, due_today on the due date, or a reminder when the
// number of days left is one of reminderDays. Completed tasks yield nothing.
func Derive(tasks []model.Task, reminderDays []int, today datemath.Date, createdAt time.Time) []model.Notification {
	reminders := make(map[int]bool, len(reminderDays))
	for _, d := range reminderDays {
		reminders[d] = true
	}

	out := make([]model.Notification, 0)
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		days := today.DaysUntil(t.DueDate)

		n := model.Notification{
			TaskID:        t.ID,
			TransactionID: t.TransactionID,
			CreatedAt:     createdAt,
		}
		switch {
		case days < 0:
			n.ID = prefixOverdue + t.ID
			n.Type = model.NotificationTypeOverdue
			n.Title = "Overdue Task"
			n.Message = fmt.Sprintf("%s was due %s ago", t.Title, pluralDays(-days))
			n.Priority = model.PriorityHigh
		case days == 0:
			n.ID = prefixDueToday + t.ID
			n.Type = model.NotificationTypeDueToday
			n.Title = "Due Today"
			n.Message = t.Title + " is due today"
			n.Priority = model.PriorityHigh
		case reminders[days]:
			n.ID = fmt.Sprintf("%s%d-%s", prefixReminder, days, t.ID)
			n.Type = model.NotificationTypeReminder
			n.Title = "Due in " + pluralDays(days)
			n.Message = fmt.Sprintf("%s is due %s", t.Title, t.DueDate.Format(messageDateLayout))
			n.Priority = model.PriorityLow
			if days == 1 {
				n.Priority = model.PriorityMedium
			}
		default:
			continue
		}
		out = append(out, n)
	}
	return out
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// Reconcile merges the stored read/dismissed flags into a freshly derived set by id.
// Dismissed notifications are dropped from the result. Flags whose id no longer appears
// in fresh are pruned from the returned state.
func Reconcile(prev model.NotificationState, fresh []model.Notification) (model.NotificationState, []model.Notification) {
	next := model.NotificationState{
		Read:      make(map[string]bool),
		Dismissed: make(map[string]bool),
	}
	visible := make([]model.Notification, 0, len(fresh))
	for _, n := range fresh {
		if prev.Read[n.ID] {
			next.Read[n.ID] = true
			n.Read = true
		}
		if prev.Dismissed[n.ID] {
			next.Dismissed[n.ID] = true
			continue
		}
		visible = append(visible, n)
	}
	return next, visible
}

// CountUnread returns how many notifications are not read.
func CountUnread(ns []model.Notification) int {
	c := 0
	for _, n := range ns {
		if !n.Read {
			c++
		}
	}
	return c
}
