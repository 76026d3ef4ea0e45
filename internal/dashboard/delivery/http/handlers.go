package http

import (
	"github.com/gin-gonic/gin"

	"transaction-coordinator/pkg/response"
)

// Dashboard godoc
// @Summary     Role-specific dashboard
// @Description Admins get office totals, agents their own book, clients their transaction progress.
// @Tags        Dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} dashboardResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/dashboard [GET]
func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Dashboard(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Dashboard: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDashboardResp(output))
}

// Pipeline godoc
// @Summary     Transaction pipeline board
// @Tags        Dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} pipelineResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/pipeline [GET]
func (h *handler) Pipeline(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Pipeline(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "uc.Pipeline: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPipelineResp(output))
}

// Analytics godoc
// @Summary     Performance analytics
// @Tags        Dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       months query int false "Months of volume history (1-24, default 6)"
// @Param       weeks  query int false "Weeks of task completion (1-12, default 4)"
// @Success     200 {object} analyticsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/analytics [GET]
func (h *handler) Analytics(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processAnalyticsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analytics(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Analytics: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnalyticsResp(output))
}
