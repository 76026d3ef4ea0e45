package http

import (
	"github.com/gin-gonic/gin"

	"transaction-coordinator/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// All routes require a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	txs := rg.Group("/transactions", mw.Auth())
	{
		txs.POST("", h.Create)
		txs.GET("", h.List)
		txs.GET("/:id", h.Detail)
		txs.PATCH("/:id", h.Update)
		txs.DELETE("/:id", h.Delete)
	}
}
