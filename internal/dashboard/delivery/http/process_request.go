package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transaction-coordinator/internal/middleware"
	"transaction-coordinator/internal/model"
	pkgErrors "transaction-coordinator/pkg/errors"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

func (h *handler) processAnalyticsReq(c *gin.Context) (model.Scope, analyticsReq, error) {
	var req analyticsReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return sc, req, nil
}
