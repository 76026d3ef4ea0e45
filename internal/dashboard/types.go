package dashboard

import (
	"transaction-coordinator/internal/model"
	"transaction-coordinator/pkg/datemath"
	"transaction-coordinator/pkg/money"
)

const (
	DefaultMonths = 6
	MaxMonths     = 24
	DefaultWeeks  = 4
	MaxWeeks      = 12
)

// TransactionSummary is one transaction with its checklist progress.
type TransactionSummary struct {
	Transaction    model.Transaction
	AgentName      string
	ClientName     string
	Progress       float64
	TasksTotal     int
	TasksCompleted int
	TasksOverdue   int
	NextDeadlines  []model.Task
}

// AdminView is the office-wide dashboard.
type AdminView struct {
	ActiveTransactions int
	OpenTasks          int
	OverdueTasks       int
	ActiveAgents       int
	TeamEfficiency     float64
	Transactions       []TransactionSummary
}

// AgentView covers the transactions assigned to one agent.
type AgentView struct {
	ActiveTransactions int
	OpenTasks          int
	DueToday           int
	ClosingsThisMonth  int
	ClosingsValue      money.Money
	Efficiency         float64
	Transactions       []TransactionSummary
}

// ClientTransaction is what a buyer or seller sees of their deal.
type ClientTransaction struct {
	Summary           TransactionSummary
	RecentlyCompleted []model.Task
	ClosingDate       string
	FinalWalkthrough  *datemath.Date
}

type ClientView struct {
	Transactions []ClientTransaction
}

// PipelineCard is one transaction on the pipeline board.
type PipelineCard struct {
	Summary     TransactionSummary
	DaysInStage int
	Priority    model.Priority
}

// Stage is one board column.
type Stage struct {
	Status     model.TransactionStatus
	Label      string
	Count      int
	TotalValue money.Money
	Cards      []PipelineCard
}

type MonthlyVolume struct {
	Month        datemath.Date
	Transactions int
	Value        money.Money
}

// WeeklyCompletion counts the tasks due in one Sunday-based week.
type WeeklyCompletion struct {
	WeekStart      datemath.Date
	Due            int
	Completed      int
	Pending        int
	CompletionRate float64
}

type StageShare struct {
	Status  model.TransactionStatus
	Label   string
	Count   int
	Percent float64
}

type AgentPerformance struct {
	AgentID        string
	Name           string
	Transactions   int
	TasksTotal     int
	TasksCompleted int
	Efficiency     float64
}

type KPIs struct {
	MonthlyRevenue     money.Money
	RevenueChange      float64
	AvgDaysToClose     float64
	TaskCompletionRate float64
	ActiveTransactions int
	ClosingThisMonth   int
}

// --- UseCase Inputs ---

type AnalyticsInput struct {
	Months int
	Weeks  int
}

// --- UseCase Outputs ---

// DashboardOutput carries exactly one of Admin, Agent or Client, matching Role.
type DashboardOutput struct {
	Role   model.RoleKind
	Today  datemath.Date
	Admin  *AdminView
	Agent  *AgentView
	Client *ClientView
}

type PipelineOutput struct {
	Today  datemath.Date
	Stages []Stage
}

type AnalyticsOutput struct {
	Today   datemath.Date
	Monthly []MonthlyVolume
	Weekly  []WeeklyCompletion
	Stages  []StageShare
	Team    []AgentPerformance
	KPIs    KPIs
}
