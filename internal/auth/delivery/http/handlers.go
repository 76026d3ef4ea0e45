package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transaction-coordinator/internal/auth"
	"transaction-coordinator/internal/middleware"
	"transaction-coordinator/internal/model"
	pkgErrors "transaction-coordinator/pkg/errors"
	"transaction-coordinator/pkg/response"
)

// Login godoc
// @Summary     Start a session
// @Description Demo login: any non-empty password is accepted. Unknown emails sign in as clients.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, auth.ErrInvalidCredentials.Error()))
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoginResp(output))
}

// Logout godoc
// @Summary     End the current session
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Error(c, pkgErrors.ErrUnauthorized)
		return
	}

	if err := h.uc.Logout(ctx, sc); err != nil {
		h.l.Warnf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Me godoc
// @Summary     Current user and role capabilities
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Error(c, pkgErrors.ErrUnauthorized)
		return
	}

	output, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "uc.Me: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMeResp(output))
}

// ListUsers godoc
// @Summary     Office directory
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Param       role query string false "admin, agent or client"
// @Success     200 {object} usersResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/users [GET]
func (h *handler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Error(c, pkgErrors.ErrUnauthorized)
		return
	}

	var req listUsersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error()))
		return
	}

	output, err := h.uc.ListUsers(ctx, sc, auth.ListUsersInput{Role: model.RoleKind(req.Role)})
	if err != nil {
		h.l.Warnf(ctx, "uc.ListUsers: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, usersResp{Users: output.Users})
}
