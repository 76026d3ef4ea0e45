package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/task"
	"transaction-coordinator/pkg/response"
)

// List godoc
// @Summary     Transaction checklist
// @Description Returns the generated tasks of one transaction with progress and blocking dependencies.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id       path  string true  "Transaction ID"
// @Param       status   query string false "Filter by status (pending/in_progress/completed/overdue)"
// @Param       category query string false "Filter by category"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/transactions/{id}/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Toggle godoc
// @Summary     Toggle task completion
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id          path string true "Transaction ID"
// @Param       template_id path string true "Task template ID"
// @Success     200 {object} taskDetailResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/transactions/{id}/tasks/{template_id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	sc, uri, err := h.processTaskURI(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Toggle(ctx, sc, uri.toRef())
	if err != nil {
		h.l.Warnf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskDetailResp(output))
}

// SetStatus godoc
// @Summary     Mark a task in progress or pending
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id          path string       true "Transaction ID"
// @Param       template_id path string       true "Task template ID"
// @Param       body        body setStatusReq true "New status"
// @Success     200 {object} taskDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/transactions/{id}/tasks/{template_id}/status [PUT]
func (h *handler) SetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	sc, uri, req, err := h.processSetStatusReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SetStatus(ctx, sc, task.SetStatusInput{TaskRef: uri.toRef(), Status: model.TaskStatus(req.Status)})
	if err != nil {
		h.l.Warnf(ctx, "uc.SetStatus: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskDetailResp(output))
}

// UpdateNotes godoc
// @Summary     Replace task notes
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id          path string         true "Transaction ID"
// @Param       template_id path string         true "Task template ID"
// @Param       body        body updateNotesReq true "Notes"
// @Success     200 {object} taskDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/transactions/{id}/tasks/{template_id}/notes [PUT]
func (h *handler) UpdateNotes(c *gin.Context) {
	ctx := c.Request.Context()

	sc, uri, req, err := h.processUpdateNotesReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateNotes(ctx, sc, task.UpdateNotesInput{TaskRef: uri.toRef(), Notes: req.Notes})
	if err != nil {
		h.l.Warnf(ctx, "uc.UpdateNotes: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskDetailResp(output))
}

// Calendar godoc
// @Summary     Deadline calendar
// @Description Quick stats plus overdue, upcoming and selected-day tasks across visible transactions.
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Param       date        query string false "ISO date or phrase such as tomorrow, in 3 days, next friday"
// @Param       window_days query int    false "Upcoming window in days (default 7)"
// @Success     200 {object} calendarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/calendar [GET]
func (h *handler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := processQuery[calendarReq](h, c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Calendar(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Calendar: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCalendarResp(output))
}

// Range godoc
// @Summary     Tasks grouped by day
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Param       from query string true "Start date (ISO or phrase)"
// @Param       to   query string true "End date (ISO or phrase)"
// @Success     200 {object} rangeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/calendar/range [GET]
func (h *handler) Range(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := processQuery[rangeReq](h, c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Range(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Range: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRangeResp(output))
}

// ExportICS godoc
// @Summary     Download deadlines as iCalendar
// @Tags        Calendar
// @Produce     text/calendar
// @Security    BearerAuth
// @Param       reminder_minutes query int false "Alarm lead time in minutes (default 60)"
// @Success     200 {string} string "text/calendar document"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/calendar/export.ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := processQuery[exportICSReq](h, c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExportICS(ctx, sc, task.ExportICSInput{ReminderMinutes: req.ReminderMinutes})
	if err != nil {
		h.l.Warnf(ctx, "uc.ExportICS: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	c.Data(http.StatusOK, output.ContentType, []byte(output.Content))
}

// ExportGoogle godoc
// @Summary     Deadlines as Google Calendar events
// @Description Returns calendar#events resources (all-day, popup reminders) ready for import.
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} googleExportResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/calendar/export/google [GET]
func (h *handler) ExportGoogle(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExportGoogle(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportGoogle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, googleExportResp{Feed: output.Feed, Skipped: output.Skipped})
}
