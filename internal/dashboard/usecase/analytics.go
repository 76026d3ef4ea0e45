package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"transaction-coordinator/internal/dashboard"
	"transaction-coordinator/internal/model"
	"transaction-coordinator/pkg/money"
)

func (uc *implUseCase) Analytics(ctx context.Context, sc model.Scope, input dashboard.AnalyticsInput) (dashboard.AnalyticsOutput, error) {
	if err := requireStaff(sc); err != nil {
		return dashboard.AnalyticsOutput{}, err
	}
	months, weeks, err := normalizeAnalyticsInput(input)
	if err != nil {
		return dashboard.AnalyticsOutput{}, err
	}

	s, err := uc.load(ctx, sc)
	if err != nil {
		return dashboard.AnalyticsOutput{}, err
	}

	return dashboard.AnalyticsOutput{
		Today:   s.today,
		Monthly: monthlyVolume(s, months),
		Weekly:  weeklyCompletion(s, weeks),
		Stages:  stageDistribution(s),
		Team:    teamPerformance(s, sc),
		KPIs:    kpis(s),
	}, nil
}

func normalizeAnalyticsInput(in dashboard.AnalyticsInput) (months, weeks int, err error) {
	months, weeks = in.Months, in.Weeks
	if months == 0 {
		months = dashboard.DefaultMonths
	}
	if weeks == 0 {
		weeks = dashboard.DefaultWeeks
	}
	if months < 1 || months > dashboard.MaxMonths {
		return 0, 0, fmt.Errorf("%w: months must be 1..%d", dashboard.ErrInvalidInput, dashboard.MaxMonths)
	}
	if weeks < 1 || weeks > dashboard.MaxWeeks {
		return 0, 0, fmt.Errorf("%w: weeks must be 1..%d", dashboard.ErrInvalidInput, dashboard.MaxWeeks)
	}
	return months, weeks, nil
}

// monthlyVolume counts deals by contract month, oldest month first, ending with the current one.
func monthlyVolume(s snapshot, months int) []dashboard.MonthlyVolume {
	start := s.today.StartOfMonth().AddMonths(-(months - 1))
	out := make([]dashboard.MonthlyVolume, months)
	for i := range out {
		out[i] = dashboard.MonthlyVolume{Month: start.AddMonths(i), Value: money.Zero(money.DefaultCurrency)}
	}
	for _, tt := range s.items {
		contract, ok := parseDate(tt.Transaction.ContractDate)
		if !ok {
			continue
		}
		for i := range out {
			if sameMonth(contract, out[i].Month) {
				out[i].Transactions++
				out[i].Value = out[i].Value.Add(tt.Transaction.PurchasePrice)
				break
			}
		}
	}
	return out
}

// weeklyCompletion buckets tasks by the week they are due in.
func weeklyCompletion(s snapshot, weeks int) []dashboard.WeeklyCompletion {
	start := s.today.StartOfWeek().AddDays(-7 * (weeks - 1))
	out := make([]dashboard.WeeklyCompletion, weeks)
	for i := range out {
		out[i].WeekStart = start.AddDays(7 * i)
	}
	for _, tt := range s.items {
		for _, t := range tt.Tasks {
			if t.DueDate.Before(start) {
				continue
			}
			i := start.DaysUntil(t.DueDate) / 7
			if i >= weeks {
				continue
			}
			out[i].Due++
			if t.Completed {
				out[i].Completed++
			}
		}
	}
	for i := range out {
		out[i].Pending = out[i].Due - out[i].Completed
		out[i].CompletionRate = percent(out[i].Completed, out[i].Due)
	}
	return out
}

func stageDistribution(s snapshot) []dashboard.StageShare {
	counts := make(map[model.TransactionStatus]int)
	for _, tt := range s.items {
		counts[tt.Transaction.Status]++
	}
	out := make([]dashboard.StageShare, 0, len(model.TransactionStages))
	for _, status := range model.TransactionStages {
		out = append(out, dashboard.StageShare{
			Status:  status,
			Label:   status.Label(),
			Count:   counts[status],
			Percent: percent(counts[status], len(s.items)),
		})
	}
	return out
}

// teamPerformance lists every agent for admins and only the caller for agents.
func teamPerformance(s snapshot, sc model.Scope) []dashboard.AgentPerformance {
	var agentIDs []string
	switch r := sc.Role.(type) {
	case model.Admin:
		agentIDs = sortedAgentIDs(s.users)
	case model.Agent:
		agentIDs = []string{r.AgentID}
	case model.Client:
	}

	out := make([]dashboard.AgentPerformance, 0, len(agentIDs))
	for _, id := range agentIDs {
		p := dashboard.AgentPerformance{AgentID: id, Name: s.userName(id)}
		var overdue int
		for _, tt := range s.items {
			if tt.Transaction.AssignedAgent != id {
				continue
			}
			c := countTasks(tt.Tasks, s.today)
			p.Transactions++
			p.TasksTotal += c.total
			p.TasksCompleted += c.completed
			overdue += c.overdue
		}
		p.Efficiency = efficiency(p.TasksCompleted, overdue)
		out = append(out, p)
	}
	return out
}

func sortedAgentIDs(users map[string]model.User) []string {
	var ids []string
	for id, u := range users {
		if u.Role == model.RoleKindAgent {
			ids = append(ids, id)
		}
	}
	// directory ids are numeric strings
	slices.SortFunc(ids, func(a, b string) int {
		if c := cmp.Compare(len(a), len(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return ids
}

func kpis(s snapshot) dashboard.KPIs {
	current := s.today.StartOfMonth()
	previous := current.AddMonths(-1)

	k := dashboard.KPIs{MonthlyRevenue: money.Zero(money.DefaultCurrency)}
	prevRevenue := money.Zero(money.DefaultCurrency)
	var closeDays, closeCount, tasksTotal, tasksDone int

	for _, tt := range s.items {
		tx := tt.Transaction
		if !tx.Status.Terminal() {
			k.ActiveTransactions++
		}
		if closesInMonth(tx, current) {
			k.ClosingThisMonth++
		}

		contract, okContract := parseDate(tx.ContractDate)
		if okContract && tx.Status != model.TransactionStatusCancelled {
			switch {
			case sameMonth(contract, current):
				k.MonthlyRevenue = k.MonthlyRevenue.Add(tx.PurchasePrice)
			case sameMonth(contract, previous):
				prevRevenue = prevRevenue.Add(tx.PurchasePrice)
			}
		}
		if closing, ok := parseDate(tx.ClosingDate); ok && okContract {
			closeDays += contract.DaysUntil(closing)
			closeCount++
		}

		c := countTasks(tt.Tasks, s.today)
		tasksTotal += c.total
		tasksDone += c.completed
	}

	k.RevenueChange = percentChange(prevRevenue, k.MonthlyRevenue)
	if closeCount > 0 {
		k.AvgDaysToClose = round1(float64(closeDays) / float64(closeCount))
	}
	k.TaskCompletionRate = percent(tasksDone, tasksTotal)
	return k
}

// percentChange is (to - from) / from in percent, or 0 when from is zero.
func percentChange(from, to money.Money) float64 {
	if from.Amount.IsZero() {
		return 0
	}
	change := to.Amount.Sub(from.Amount).Div(from.Amount).Mul(decimal.NewFromInt(100))
	return change.Round(1).InexactFloat64()
}
