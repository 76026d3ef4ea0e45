package usecase

import (
	"context"
	"slices"

	"transaction-coordinator/internal/dashboard"
	"transaction-coordinator/internal/model"
	"transaction-coordinator/pkg/money"
)

const finalWalkthroughTemplate = "final-walkthrough"

func (uc *implUseCase) Dashboard(ctx context.Context, sc model.Scope) (dashboard.DashboardOutput, error) {
	s, err := uc.load(ctx, sc)
	if err != nil {
		return dashboard.DashboardOutput{}, err
	}

	out := dashboard.DashboardOutput{Today: s.today}
	switch sc.Role.(type) {
	case model.Admin:
		out.Role = model.RoleKindAdmin
		out.Admin = uc.adminView(s)
	case model.Agent:
		out.Role = model.RoleKindAgent
		out.Agent = uc.agentView(s)
	case model.Client:
		out.Role = model.RoleKindClient
		out.Client = uc.clientView(s)
	default:
		return dashboard.DashboardOutput{}, dashboard.ErrForbidden
	}
	return out, nil
}

func (uc *implUseCase) adminView(s snapshot) *dashboard.AdminView {
	v := &dashboard.AdminView{Transactions: []dashboard.TransactionSummary{}}
	agents := map[string]bool{}
	var completed, overdue int

	for _, tt := range s.items {
		c := countTasks(tt.Tasks, s.today)
		completed += c.completed
		overdue += c.overdue

		if tt.Transaction.Status.Terminal() {
			continue
		}
		v.ActiveTransactions++
		v.OpenTasks += c.open
		v.OverdueTasks += c.overdue
		if tt.Transaction.AssignedAgent != "" {
			agents[tt.Transaction.AssignedAgent] = true
		}
		v.Transactions = append(v.Transactions, uc.summarize(s, tt))
	}
	v.ActiveAgents = len(agents)
	v.TeamEfficiency = efficiency(completed, overdue)
	return v
}

func (uc *implUseCase) agentView(s snapshot) *dashboard.AgentView {
	v := &dashboard.AgentView{
		ClosingsValue: money.Zero(money.DefaultCurrency),
		Transactions:  []dashboard.TransactionSummary{},
	}
	var completed, overdue int

	for _, tt := range s.items {
		c := countTasks(tt.Tasks, s.today)
		completed += c.completed
		overdue += c.overdue

		if closesInMonth(tt.Transaction, s.today) {
			v.ClosingsThisMonth++
			v.ClosingsValue = v.ClosingsValue.Add(tt.Transaction.PurchasePrice)
		}
		if tt.Transaction.Status.Terminal() {
			continue
		}
		v.ActiveTransactions++
		v.OpenTasks += c.open
		v.DueToday += c.dueToday
		v.Transactions = append(v.Transactions, uc.summarize(s, tt))
	}
	v.Efficiency = efficiency(completed, overdue)
	return v
}

func (uc *implUseCase) clientView(s snapshot) *dashboard.ClientView {
	v := &dashboard.ClientView{Transactions: make([]dashboard.ClientTransaction, 0, len(s.items))}
	for _, tt := range s.items {
		ct := dashboard.ClientTransaction{
			Summary:           uc.summarize(s, tt),
			RecentlyCompleted: recentlyCompleted(tt.Tasks),
			ClosingDate:       tt.Transaction.ClosingDate,
		}
		for _, t := range tt.Tasks {
			if t.TemplateID == finalWalkthroughTemplate {
				due := t.DueDate
				ct.FinalWalkthrough = &due
			}
		}
		v.Transactions = append(v.Transactions, ct)
	}
	return v
}

// recentlyCompleted returns the latest finished tasks, newest first.
func recentlyCompleted(tasks []model.Task) []model.Task {
	var done []model.Task
	for _, t := range tasks {
		if t.Completed {
			done = append(done, t)
		}
	}
	slices.SortStableFunc(done, func(a, b model.Task) int {
		switch {
		case a.CompletedAt == nil && b.CompletedAt == nil:
			return b.DueDate.Compare(a.DueDate)
		case a.CompletedAt == nil:
			return 1
		case b.CompletedAt == nil:
			return -1
		default:
			return b.CompletedAt.Compare(*a.CompletedAt)
		}
	})
	if len(done) > 3 {
		done = done[:3]
	}
	return done
}
