package http

import (
	"github.com/gin-gonic/gin"

	"transaction-coordinator/pkg/response"
)

// Create godoc
// @Summary     Create a transaction
// @Description Opens a new transaction. Agents are assigned to what they create; clients may not create.
// @Tags        Transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Transaction data"
// @Success     201  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     403  {object} response.Resp "Forbidden"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/transactions [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List transactions
// @Description Returns the transactions visible to the caller's role.
// @Tags        Transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       status           query string false "Filter by status"
// @Param       transaction_type query string false "Filter by type (purchase/sale/refinance/lease)"
// @Param       limit            query int    false "Page size (default: 20)"
// @Param       offset           query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/transactions [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get transaction detail
// @Tags        Transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} detailResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/transactions/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a transaction
// @Description Partial update; omitted fields are unchanged. Closed and cancelled transactions keep their status.
// @Tags        Transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Transaction ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/transactions/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a transaction
// @Description Admin only.
// @Tags        Transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/transactions/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
