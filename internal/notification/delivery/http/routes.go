package http

import (
	"github.com/gin-gonic/gin"

	"transaction-coordinator/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	n := rg.Group("/notifications", mw.Auth())
	{
		n.GET("", h.List)
		n.POST("/read-all", h.MarkAllRead)
		n.GET("/settings", h.GetSettings)
		n.PUT("/settings", h.UpdateSettings)
		n.GET("/digest", h.Digest)
		n.POST("/test", h.Test)
		n.POST("/:id/read", h.MarkRead)
		n.DELETE("/:id", h.Dismiss)
	}
}
