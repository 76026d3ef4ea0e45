package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transaction-coordinator/internal/middleware"
	"transaction-coordinator/internal/model"
	pkgErrors "transaction-coordinator/pkg/errors"
)

func badRequest(err error) error {
	return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
}

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

func (h *handler) processListReq(c *gin.Context) (model.Scope, listReq, error) {
	var req listReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, badRequest(err)
	}
	return sc, req, nil
}

func (h *handler) processIDReq(c *gin.Context) (model.Scope, string, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, "", err
	}
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return sc, "", badRequest(err)
	}
	return sc, uri.ID, nil
}

func (h *handler) processUpdateSettingsReq(c *gin.Context) (model.Scope, updateSettingsReq, error) {
	var req updateSettingsReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, badRequest(err)
	}
	return sc, req, nil
}
