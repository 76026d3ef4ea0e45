package http

import (
	"transaction-coordinator/internal/dashboard"
	"transaction-coordinator/internal/model"
	"transaction-coordinator/pkg/datemath"
	"transaction-coordinator/pkg/money"
)

// --- Request DTOs ---

type analyticsReq struct {
	Months int `form:"months" binding:"omitempty,min=1,max=24"`
	Weeks  int `form:"weeks"  binding:"omitempty,min=1,max=12"`
}

func (r analyticsReq) toInput() dashboard.AnalyticsInput {
	return dashboard.AnalyticsInput{Months: r.Months, Weeks: r.Weeks}
}

// --- Response DTOs ---

type deadlineResp struct {
	TaskID     string        `json:"task_id"`
	TemplateID string        `json:"template_id"`
	Title      string        `json:"title"`
	DueDate    datemath.Date `json:"due_date"`
	Status     string        `json:"status"`
	Priority   string        `json:"priority"`
}

func newDeadlineResps(tasks []model.Task) []deadlineResp {
	out := make([]deadlineResp, len(tasks))
	for i, t := range tasks {
		out[i] = deadlineResp{
			TaskID:     t.ID,
			TemplateID: t.TemplateID,
			Title:      t.Title,
			DueDate:    t.DueDate,
			Status:     string(t.Status),
			Priority:   string(t.Priority),
		}
	}
	return out
}

type summaryResp struct {
	ID              string         `json:"id"`
	Address         string         `json:"address"`
	TransactionType string         `json:"transaction_type"`
	Status          string         `json:"status"`
	Stage           string         `json:"stage"`
	PurchasePrice   money.Money    `json:"purchase_price"`
	ContractDate    string         `json:"contract_date"`
	ClosingDate     string         `json:"closing_date,omitempty"`
	AgentID         string         `json:"agent_id,omitempty"`
	AgentName       string         `json:"agent_name,omitempty"`
	ClientName      string         `json:"client_name,omitempty"`
	Progress        float64        `json:"progress"`
	TasksTotal      int            `json:"tasks_total"`
	TasksCompleted  int            `json:"tasks_completed"`
	TasksOverdue    int            `json:"tasks_overdue"`
	NextDeadlines   []deadlineResp `json:"next_deadlines"`
}

func newSummaryResp(s dashboard.TransactionSummary) summaryResp {
	tx := s.Transaction
	return summaryResp{
		ID:              tx.ID,
		Address:         tx.Property.Address,
		TransactionType: string(tx.TransactionType),
		Status:          string(tx.Status),
		Stage:           tx.Status.Label(),
		PurchasePrice:   tx.PurchasePrice,
		ContractDate:    tx.ContractDate,
		ClosingDate:     tx.ClosingDate,
		AgentID:         tx.AssignedAgent,
		AgentName:       s.AgentName,
		ClientName:      s.ClientName,
		Progress:        s.Progress,
		TasksTotal:      s.TasksTotal,
		TasksCompleted:  s.TasksCompleted,
		TasksOverdue:    s.TasksOverdue,
		NextDeadlines:   newDeadlineResps(s.NextDeadlines),
	}
}

func newSummaryResps(items []dashboard.TransactionSummary) []summaryResp {
	out := make([]summaryResp, len(items))
	for i, s := range items {
		out[i] = newSummaryResp(s)
	}
	return out
}

type adminResp struct {
	ActiveTransactions int           `json:"active_transactions"`
	OpenTasks          int           `json:"open_tasks"`
	OverdueTasks       int           `json:"overdue_tasks"`
	ActiveAgents       int           `json:"active_agents"`
	TeamEfficiency     float64       `json:"team_efficiency"`
	Transactions       []summaryResp `json:"transactions"`
}

type agentResp struct {
	ActiveTransactions int           `json:"active_transactions"`
	OpenTasks          int           `json:"open_tasks"`
	DueToday           int           `json:"due_today"`
	ClosingsThisMonth  int           `json:"closings_this_month"`
	ClosingsValue      money.Money   `json:"closings_value"`
	Efficiency         float64       `json:"efficiency"`
	Transactions       []summaryResp `json:"transactions"`
}

type clientTransactionResp struct {
	summaryResp
	RecentlyCompleted []deadlineResp `json:"recently_completed"`
	FinalWalkthrough  datemath.Date  `json:"final_walkthrough,omitzero"`
}

type clientResp struct {
	Transactions []clientTransactionResp `json:"transactions"`
}

type dashboardResp struct {
	Role   string        `json:"role"`
	Today  datemath.Date `json:"today"`
	Admin  *adminResp    `json:"admin,omitempty"`
	Agent  *agentResp    `json:"agent,omitempty"`
	Client *clientResp   `json:"client,omitempty"`
}

func (h *handler) newDashboardResp(out dashboard.DashboardOutput) dashboardResp {
	resp := dashboardResp{Role: string(out.Role), Today: out.Today}
	switch {
	case out.Admin != nil:
		v := out.Admin
		resp.Admin = &adminResp{
			ActiveTransactions: v.ActiveTransactions,
			OpenTasks:          v.OpenTasks,
			OverdueTasks:       v.OverdueTasks,
			ActiveAgents:       v.ActiveAgents,
			TeamEfficiency:     v.TeamEfficiency,
			Transactions:       newSummaryResps(v.Transactions),
		}
	case out.Agent != nil:
		v := out.Agent
		resp.Agent = &agentResp{
			ActiveTransactions: v.ActiveTransactions,
			OpenTasks:          v.OpenTasks,
			DueToday:           v.DueToday,
			ClosingsThisMonth:  v.ClosingsThisMonth,
			ClosingsValue:      v.ClosingsValue,
			Efficiency:         v.Efficiency,
			Transactions:       newSummaryResps(v.Transactions),
		}
	case out.Client != nil:
		txs := make([]clientTransactionResp, len(out.Client.Transactions))
		for i, ct := range out.Client.Transactions {
			txs[i] = clientTransactionResp{
				summaryResp:       newSummaryResp(ct.Summary),
				RecentlyCompleted: newDeadlineResps(ct.RecentlyCompleted),
			}
			if ct.FinalWalkthrough != nil {
				txs[i].FinalWalkthrough = *ct.FinalWalkthrough
			}
		}
		resp.Client = &clientResp{Transactions: txs}
	}
	return resp
}

type cardResp struct {
	summaryResp
	DaysInStage int    `json:"days_in_stage"`
	Priority    string `json:"priority"`
}

type stageResp struct {
	Status       string      `json:"status"`
	Label        string      `json:"label"`
	Count        int         `json:"count"`
	TotalValue   money.Money `json:"total_value"`
	TotalMillion string      `json:"total_millions"`
	Cards        []cardResp  `json:"cards"`
}

type pipelineResp struct {
	Today  datemath.Date `json:"today"`
	Stages []stageResp   `json:"stages"`
}

func (h *handler) newPipelineResp(out dashboard.PipelineOutput) pipelineResp {
	stages := make([]stageResp, len(out.Stages))
	for i, s := range out.Stages {
		cards := make([]cardResp, len(s.Cards))
		for j, c := range s.Cards {
			cards[j] = cardResp{
				summaryResp: newSummaryResp(c.Summary),
				DaysInStage: c.DaysInStage,
				Priority:    string(c.Priority),
			}
		}
		stages[i] = stageResp{
			Status:       string(s.Status),
			Label:        s.Label,
			Count:        s.Count,
			TotalValue:   s.TotalValue,
			TotalMillion: s.TotalValue.Millions(),
			Cards:        cards,
		}
	}
	return pipelineResp{Today: out.Today, Stages: stages}
}

type monthlyResp struct {
	Month        string      `json:"month"`
	Label        string      `json:"label"`
	Transactions int         `json:"transactions"`
	Value        money.Money `json:"value"`
}

type weeklyResp struct {
	WeekStart      datemath.Date `json:"week_start"`
	Label          string        `json:"label"`
	Due            int           `json:"due"`
	Completed      int           `json:"completed"`
	Pending        int           `json:"pending"`
	CompletionRate float64       `json:"completion_rate"`
}

type stageShareResp struct {
	Status  string  `json:"status"`
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type agentPerformanceResp struct {
	AgentID        string  `json:"agent_id"`
	Name           string  `json:"name"`
	Transactions   int     `json:"transactions"`
	TasksTotal     int     `json:"tasks_total"`
	TasksCompleted int     `json:"tasks_completed"`
	Efficiency     float64 `json:"efficiency"`
}

type kpisResp struct {
	MonthlyRevenue     money.Money `json:"monthly_revenue"`
	RevenueChange      float64     `json:"revenue_change"`
	AvgDaysToClose     float64     `json:"avg_days_to_close"`
	TaskCompletionRate float64     `json:"task_completion_rate"`
	ActiveTransactions int         `json:"active_transactions"`
	ClosingThisMonth   int         `json:"closing_this_month"`
}

type analyticsResp struct {
	Today   datemath.Date          `json:"today"`
	Monthly []monthlyResp          `json:"monthly_volume"`
	Weekly  []weeklyResp           `json:"weekly_completion"`
	Stages  []stageShareResp       `json:"stage_distribution"`
	Team    []agentPerformanceResp `json:"team_performance"`
	KPIs    kpisResp               `json:"kpis"`
}

func (h *handler) newAnalyticsResp(out dashboard.AnalyticsOutput) analyticsResp {
	resp := analyticsResp{
		Today:   out.Today,
		Monthly: make([]monthlyResp, len(out.Monthly)),
		Weekly:  make([]weeklyResp, len(out.Weekly)),
		Stages:  make([]stageShareResp, len(out.Stages)),
		Team:    make([]agentPerformanceResp, len(out.Team)),
		KPIs: kpisResp{
			MonthlyRevenue:     out.KPIs.MonthlyRevenue,
			RevenueChange:      out.KPIs.RevenueChange,
			AvgDaysToClose:     out.KPIs.AvgDaysToClose,
			TaskCompletionRate: out.KPIs.TaskCompletionRate,
			ActiveTransactions: out.KPIs.ActiveTransactions,
			ClosingThisMonth:   out.KPIs.ClosingThisMonth,
		},
	}
	for i, m := range out.Monthly {
		resp.Monthly[i] = monthlyResp{
			Month:        m.Month.Format("2006-01"),
			Label:        m.Month.Format("Jan"),
			Transactions: m.Transactions,
			Value:        m.Value,
		}
	}
	for i, w := range out.Weekly {
		resp.Weekly[i] = weeklyResp{
			WeekStart:      w.WeekStart,
			Label:          "Week of " + w.WeekStart.Format("Jan 2"),
			Due:            w.Due,
			Completed:      w.Completed,
			Pending:        w.Pending,
			CompletionRate: w.CompletionRate,
		}
	}
	for i, s := range out.Stages {
		resp.Stages[i] = stageShareResp{Status: string(s.Status), Label: s.Label, Count: s.Count, Percent: s.Percent}
	}
	for i, p := range out.Team {
		resp.Team[i] = agentPerformanceResp{
			AgentID:        p.AgentID,
			Name:           p.Name,
			Transactions:   p.Transactions,
			TasksTotal:     p.TasksTotal,
			TasksCompleted: p.TasksCompleted,
			Efficiency:     p.Efficiency,
		}
	}
	return resp
}
