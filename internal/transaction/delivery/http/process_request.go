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

// processScope returns the caller scope set by the Auth middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

// processCreateReq binds and validates the create transaction request body.
func (h *handler) processCreateReq(c *gin.Context) (model.Scope, createReq, error) {
	var req createReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, badRequest(err)
	}
	return sc, req, nil
}

// processListReq binds the list query parameters.
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

// processUpdateReq binds the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (model.Scope, updateReq, error) {
	var req updateReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, badRequest(err)
	}
	req.ID = c.Param("id")
	return sc, req, nil
}
