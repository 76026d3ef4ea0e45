package http

import (
	"github.com/gin-gonic/gin"

	"transaction-coordinator/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/dashboard", mw.Auth(), h.Dashboard)
	rg.GET("/pipeline", mw.Auth(), h.Pipeline)
	rg.GET("/analytics", mw.Auth(), h.Analytics)
}
