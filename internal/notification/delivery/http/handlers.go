package http

import (
	"github.com/gin-gonic/gin"

	"transaction-coordinator/internal/notification"
	"transaction-coordinator/pkg/response"
)

// List godoc
// @Summary     List notifications
// @Description Derives alerts from the caller's visible tasks and merges stored read/dismissed flags.
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
// @Param       unread_only query bool false "Only unread notifications"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/notifications [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, notification.ListInput{UnreadOnly: req.UnreadOnly})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// MarkRead godoc
// @Summary     Mark one notification read
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Notification ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notifications/{id}/read [POST]
func (h *handler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.MarkRead(ctx, sc, id); err != nil {
		h.l.Warnf(ctx, "uc.MarkRead: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// MarkAllRead godoc
// @Summary     Mark every notification read
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} markAllReadResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/notifications/read-all [POST]
func (h *handler) MarkAllRead(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	n, err := h.uc.MarkAllRead(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.MarkAllRead: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, markAllReadResp{Marked: n})
}

// Dismiss godoc
// @Summary     Dismiss a notification
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Notification ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notifications/{id} [DELETE]
func (h *handler) Dismiss(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Dismiss(ctx, sc, id); err != nil {
		h.l.Warnf(ctx, "uc.Dismiss: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// GetSettings godoc
// @Summary     Notification preferences
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} settingsResp
// @Router      /api/v1/notifications/settings [GET]
func (h *handler) GetSettings(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GetSettings(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSettings: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSettingsResp(output))
}

// UpdateSettings godoc
// @Summary     Update notification preferences
// @Description Partial update. Reminder days must be 1..30; digest time is HH:MM.
// @Tags        Notifications
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body updateSettingsReq true "Settings"
// @Success     200 {object} settingsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/notifications/settings [PUT]
func (h *handler) UpdateSettings(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateSettingsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateSettings(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.UpdateSettings: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSettingsResp(output))
}

// Digest godoc
// @Summary     Daily digest preview
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} digestResp
// @Router      /api/v1/notifications/digest [GET]
func (h *handler) Digest(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Digest(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Digest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDigestResp(output))
}

// Test godoc
// @Summary     Send a test notification
// @Description Builds a synthetic notification. Nothing is delivered.
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} testResp
// @Router      /api/v1/notifications/test [POST]
func (h *handler) Test(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Test(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Test: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, testResp{Notification: newNotificationResp(output.Notification)})
}
