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

func (h *handler) processListReq(c *gin.Context) (model.Scope, listReq, error) {
	var req listReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, badRequest(err)
	}
	req.TransactionID = c.Param("id")
	return sc, req, nil
}

func (h *handler) processTaskURI(c *gin.Context) (model.Scope, taskURI, error) {
	var uri taskURI
	sc, err := h.processScope(c)
	if err != nil {
		return sc, uri, err
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		return sc, uri, badRequest(err)
	}
	return sc, uri, nil
}

func (h *handler) processSetStatusReq(c *gin.Context) (model.Scope, taskURI, setStatusReq, error) {
	var req setStatusReq
	sc, uri, err := h.processTaskURI(c)
	if err != nil {
		return sc, uri, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, uri, req, badRequest(err)
	}
	return sc, uri, req, nil
}

func (h *handler) processUpdateNotesReq(c *gin.Context) (model.Scope, taskURI, updateNotesReq, error) {
	var req updateNotesReq
	sc, uri, err := h.processTaskURI(c)
	if err != nil {
		return sc, uri, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, uri, req, badRequest(err)
	}
	return sc, uri, req, nil
}

// processQuery binds query parameters into req after checking the session.
func processQuery[T any](h *handler, c *gin.Context) (model.Scope, T, error) {
	var req T
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, badRequest(err)
	}
	return sc, req, nil
}
