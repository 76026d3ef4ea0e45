package usecase

import (
	"context"
	"math"
	"slices"
	"strings"

	"transaction-coordinator/internal/dashboard"
	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/task"
	"transaction-coordinator/pkg/datemath"
)

// snapshot is everything a report needs, loaded once per call.
type snapshot struct {
	items []task.TransactionTasks
	users map[string]model.User
	today datemath.Date
}

func (uc *implUseCase) load(ctx context.Context, sc model.Scope) (snapshot, error) {
	items, err := uc.taskUC.Visible(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.load: Visible: %v", err)
		return snapshot{}, err
	}

	directory, err := uc.authUC.Directory(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.load: Directory: %v", err)
		return snapshot{}, err
	}
	users := make(map[string]model.User, len(directory))
	for _, u := range directory {
		users[u.ID] = u
	}

	return snapshot{items: items, users: users, today: uc.taskUC.Today()}, nil
}

func requireStaff(sc model.Scope) error {
	switch sc.Role.(type) {
	case model.Admin, model.Agent:
		return nil
	case model.Client:
		return dashboard.ErrForbidden
	default:
		return dashboard.ErrForbidden
	}
}

func (uc *implUseCase) summarize(s snapshot, tt task.TransactionTasks) dashboard.TransactionSummary {
	stats := uc.checklist.GetStats(tt.Tasks)
	return dashboard.TransactionSummary{
		Transaction:    tt.Transaction,
		AgentName:      s.userName(tt.Transaction.AssignedAgent),
		ClientName:     clientName(tt.Transaction),
		Progress:       stats.Progress,
		TasksTotal:     stats.Total,
		TasksCompleted: stats.Completed,
		TasksOverdue:   stats.Overdue,
		NextDeadlines:  nextDeadlines(tt.Tasks),
	}
}

func (s snapshot) userName(id string) string {
	if u, ok := s.users[id]; ok {
		return u.FullName()
	}
	return ""
}

// clientName prefers the principal party of the deal: the buyer on purchases, the seller otherwise.
func clientName(tx model.Transaction) string {
	want := model.ContactRoleSeller
	if tx.TransactionType == model.TransactionTypePurchase {
		want = model.ContactRoleBuyer
	}
	for _, c := range tx.Contacts {
		if c.Role == want {
			return contactName(c)
		}
	}
	if len(tx.Contacts) > 0 {
		return contactName(tx.Contacts[0])
	}
	return ""
}

func contactName(c model.Contact) string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// nextDeadlines returns the earliest incomplete tasks.
func nextDeadlines(tasks []model.Task) []model.Task {
	open := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			open = append(open, t)
		}
	}
	sortByDue(open)
	if len(open) > 3 {
		open = open[:3]
	}
	return open
}

func sortByDue(tasks []model.Task) {
	slices.SortStableFunc(tasks, func(a, b model.Task) int {
		if c := a.DueDate.Compare(b.DueDate); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}

// efficiency is the share of due work done: completed / (completed + overdue).
// With nothing completed or late it is 100.
func efficiency(completed, overdue int) float64 {
	if completed+overdue == 0 {
		return 100
	}
	return percent(completed, completed+overdue)
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return round1(float64(part) / float64(whole) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func parseDate(s string) (datemath.Date, bool) {
	d, err := datemath.ParseDate(s)
	return d, err == nil
}

func sameMonth(a, b datemath.Date) bool {
	return a.Year == b.Year && a.Month == b.Month
}

// closesInMonth reports whether a live or closed deal has its closing date in month.
func closesInMonth(tx model.Transaction, month datemath.Date) bool {
	if tx.Status == model.TransactionStatusCancelled {
		return false
	}
	d, ok := parseDate(tx.ClosingDate)
	return ok && sameMonth(d, month)
}

type taskCounts struct {
	total, completed, overdue, open, dueToday int
}

func countTasks(tasks []model.Task, today datemath.Date) taskCounts {
	var c taskCounts
	for _, t := range tasks {
		c.total++
		switch {
		case t.Completed:
			c.completed++
		case t.DueDate.Before(today):
			c.overdue++
			c.open++
		default:
			c.open++
			if t.DueDate == today {
				c.dueToday++
			}
		}
	}
	return c
}
