package http

import (
	"time"

	"google.golang.org/api/calendar/v3"

	"transaction-coordinator/internal/checklist"
	"transaction-coordinator/internal/deadline"
	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/task"
	"transaction-coordinator/pkg/datemath"
)

// --- Request DTOs ---

type taskURI struct {
	TransactionID string `uri:"id"          binding:"required"`
	TemplateID    string `uri:"template_id" binding:"required"`
}

func (r taskURI) toRef() task.TaskRef {
	return task.TaskRef{TransactionID: r.TransactionID, TemplateID: r.TemplateID}
}

type listReq struct {
	TransactionID string `form:"-"`
	Status        string `form:"status"`
	Category      string `form:"category"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		TransactionID: r.TransactionID,
		Status:        model.TaskStatus(r.Status),
		Category:      model.TaskCategory(r.Category),
	}
}

type setStatusReq struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress"`
}

type updateNotesReq struct {
	Notes string `json:"notes" binding:"max=2000"`
}

type calendarReq struct {
	Date       string `form:"date"`
	WindowDays int    `form:"window_days"`
}

func (r calendarReq) toInput() task.CalendarInput {
	return task.CalendarInput{Date: r.Date, WindowDays: r.WindowDays}
}

type rangeReq struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to"   binding:"required"`
}

func (r rangeReq) toInput() task.RangeInput {
	return task.RangeInput{From: r.From, To: r.To}
}

type exportICSReq struct {
	ReminderMinutes int `form:"reminder_minutes"`
}

// --- Response DTOs ---

type taskResp struct {
	ID            string        `json:"id"`
	TransactionID string        `json:"transaction_id"`
	TemplateID    string        `json:"template_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description,omitempty"`
	DueDate       datemath.Date `json:"due_date"`
	Completed     bool          `json:"completed"`
	Status        string        `json:"status"`
	AssignedTo    string        `json:"assigned_to,omitempty"`
	Category      string        `json:"category"`
	Priority      string        `json:"priority"`
	IsRequired    bool          `json:"is_required"`
	Dependencies  []string      `json:"dependencies"`
	BlockedBy     []string      `json:"blocked_by,omitempty"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty"`
	CompletedBy   string        `json:"completed_by,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

func newTaskResp(t model.Task, blockedBy []string) taskResp {
	deps := t.Dependencies
	if deps == nil {
		deps = []string{}
	}
	return taskResp{
		ID:            t.ID,
		TransactionID: t.TransactionID,
		TemplateID:    t.TemplateID,
		Title:         t.Title,
		Description:   t.Description,
		DueDate:       t.DueDate,
		Completed:     t.Completed,
		Status:        string(t.Status),
		AssignedTo:    t.AssignedTo,
		Category:      string(t.Category),
		Priority:      string(t.Priority),
		IsRequired:    t.IsRequired,
		Dependencies:  deps,
		BlockedBy:     blockedBy,
		CompletedAt:   t.CompletedAt,
		CompletedBy:   t.CompletedBy,
		Notes:         t.Notes,
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t, nil)
	}
	return out
}

type statsResp struct {
	Total      int     `json:"total"`
	Completed  int     `json:"completed"`
	Pending    int     `json:"pending"`
	Overdue    int     `json:"overdue"`
	InProgress int     `json:"in_progress"`
	Progress   float64 `json:"progress"`
}

func newStatsResp(s checklist.ChecklistStats) statsResp {
	return statsResp{
		Total:      s.Total,
		Completed:  s.Completed,
		Pending:    s.Pending,
		Overdue:    s.Overdue,
		InProgress: s.InProgress,
		Progress:   s.Progress,
	}
}

type listResp struct {
	TransactionID string     `json:"transaction_id"`
	Address       string     `json:"address"`
	Tasks         []taskResp `json:"tasks"`
	Stats         statsResp  `json:"stats"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Items))
	for i, it := range out.Items {
		tasks[i] = newTaskResp(it.Task, it.BlockedBy)
	}
	return listResp{
		TransactionID: out.Transaction.ID,
		Address:       out.Transaction.Property.Address,
		Tasks:         tasks,
		Stats:         newStatsResp(out.Stats),
	}
}

type taskDetailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newTaskDetailResp(out task.TaskOutput) taskDetailResp {
	return taskDetailResp{Task: newTaskResp(out.Task, nil)}
}

type summaryResp struct {
	DueToday  int `json:"due_today"`
	Upcoming  int `json:"upcoming"`
	Overdue   int `json:"overdue"`
	Completed int `json:"completed"`
}

type calendarResp struct {
	Today    datemath.Date `json:"today"`
	Date     datemath.Date `json:"date"`
	Summary  summaryResp   `json:"summary"`
	Overdue  []taskResp    `json:"overdue"`
	Upcoming []taskResp    `json:"upcoming"`
	OnDate   []taskResp    `json:"on_date"`
}

func (h *handler) newCalendarResp(out task.CalendarOutput) calendarResp {
	return calendarResp{
		Today: out.Today,
		Date:  out.Date,
		Summary: summaryResp{
			DueToday:  out.Summary.DueToday,
			Upcoming:  out.Summary.Upcoming,
			Overdue:   out.Summary.Overdue,
			Completed: out.Summary.Completed,
		},
		Overdue:  newTaskResps(out.Overdue),
		Upcoming: newTaskResps(out.Upcoming),
		OnDate:   newTaskResps(out.OnDate),
	}
}

type dayResp struct {
	Date  datemath.Date `json:"date"`
	Tasks []taskResp    `json:"tasks"`
}

type rangeResp struct {
	From datemath.Date `json:"from"`
	To   datemath.Date `json:"to"`
	Days []dayResp     `json:"days"`
}

func (h *handler) newRangeResp(out task.RangeOutput) rangeResp {
	return rangeResp{From: out.From, To: out.To, Days: newDayResps(out.Days)}
}

func newDayResps(groups []deadline.DayGroup) []dayResp {
	out := make([]dayResp, len(groups))
	for i, g := range groups {
		out[i] = dayResp{Date: g.Date, Tasks: newTaskResps(g.Tasks)}
	}
	return out
}

type googleExportResp struct {
	Feed    *calendar.Events `json:"feed"`
	Skipped int              `json:"skipped"`
}
